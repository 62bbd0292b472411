package repository

import (
	"context"
	"fmt"
	"sort"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxUnprocessedRetries bounds how often BatchWriteItem leftovers are resent.
const maxUnprocessedRetries = 5

type ledgerItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LedgerDynamoRepository persists LedgerEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LedgerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb DynamoAPI, tableName string) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LedgerDynamoRepository) Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
	av, err := attributevalue.MarshalMap(toLedgerItem(e))
	if err != nil {
		return entities.LedgerEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	return e, nil
}

// List returns every entry, newest date first.
func (r *LedgerDynamoRepository) List(ctx context.Context) ([]entities.LedgerEntry, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	entries := make([]entities.LedgerEntry, 0, len(raw))
	for _, m := range raw {
		var it ledgerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLedgerItem(it))
	}
	sortLedger(entries)
	return entries, nil
}

func (r *LedgerDynamoRepository) Update(ctx context.Context, id string, changes entities.LedgerChanges) (int64, error) {
	values := make(map[string]types.AttributeValue, len(changes))
	for f, v := range changes {
		av, err := attributeValue(v)
		if err != nil {
			return 0, fmt.Errorf("ledger field %q: %w", f, err)
		}
		values[string(f)] = av
	}
	return updateItem(ctx, r.ddb, r.tableName, id, values)
}

func (r *LedgerDynamoRepository) Delete(ctx context.Context, id string) (int64, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

// DeleteAll removes every entry in batches of 25 keys.
func (r *LedgerDynamoRepository) DeleteAll(ctx context.Context) (int64, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return 0, err
	}

	var deleted int64
	for start := 0; start < len(raw); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(raw))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, m := range raw[start:end] {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{"id": m["id"]}},
			})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return deleted, err
		}
		deleted += int64(len(reqs))
	}
	return deleted, nil
}

func (r *LedgerDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
		if attempt > maxUnprocessedRetries {
			return fmt.Errorf("batch delete: %d items left unprocessed", len(pending[r.tableName]))
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
	}
	return nil
}

func sortLedger(entries []entities.LedgerEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Date != entries[b].Date {
			return entries[a].Date > entries[b].Date
		}
		return entries[a].CreatedAt.After(entries[b].CreatedAt)
	})
}

func toLedgerItem(e entities.LedgerEntry) ledgerItem {
	return ledgerItem{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Date:        e.Date,
		CreatedAt:   timeToString(e.CreatedAt),
	}
}

func fromLedgerItem(it ledgerItem) entities.LedgerEntry {
	return entities.LedgerEntry{
		ID:          it.ID,
		Kind:        entities.LedgerKind(it.Kind),
		Description: it.Description,
		Amount:      parseDecimal(it.Amount),
		Date:        it.Date,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
