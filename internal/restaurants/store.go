// internal/restaurants/store.go
package restaurants

import (
	"context"
	"errors"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	apperrors "dining-concierge/internal/common/errors"
	"dining-concierge/internal/models"
)

// ErrRecordNotFound is returned when a business ID has no row in the table.
var ErrRecordNotFound = errors.New("restaurant record not found")

// partitionKey is the table's key attribute. The name contains a space
// because the table predates this service.
const partitionKey = "Business ID"

// DynamoService is the document store surface the Store needs, kept narrow
// for mocking.
type DynamoService interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store reads and writes full restaurant records in the document store.
type Store struct {
	db    DynamoService
	table string
}

func NewStore(db DynamoService, table string) *Store {
	return &Store{
		db:    db,
		table: table,
	}
}

// Get fetches the full record for one business ID.
func (s *Store) Get(ctx context.Context, businessID string) (models.RestaurantRecord, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: awssdk.String(s.table),
		Key: map[string]types.AttributeValue{
			partitionKey: &types.AttributeValueMemberS{Value: businessID},
		},
	})
	if err != nil {
		return models.RestaurantRecord{}, apperrors.NewRecordLookupFailedError(businessID, err)
	}

	if out.Item == nil {
		return models.RestaurantRecord{}, fmt.Errorf("business %s: %w", businessID, ErrRecordNotFound)
	}

	var record models.RestaurantRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return models.RestaurantRecord{}, apperrors.NewRecordLookupFailedError(businessID, err)
	}

	return record, nil
}

// Put writes one record, stamping the insertion time if it is missing.
func (s *Store) Put(ctx context.Context, record models.RestaurantRecord) error {
	if record.InsertedAtTimestamp == "" {
		record.InsertedAtTimestamp = time.Now().UTC().Format(time.RFC3339)
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return apperrors.NewRecordWriteFailedError(record.BusinessID, err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: awssdk.String(s.table),
		Item:      item,
	})
	if err != nil {
		return apperrors.NewRecordWriteFailedError(record.BusinessID, err)
	}

	return nil
}
