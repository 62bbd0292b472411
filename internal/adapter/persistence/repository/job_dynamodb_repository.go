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
	"github.com/sirupsen/logrus"
)

type jobItem struct {
	ID            string `dynamodbav:"id"`
	CustomerName  string `dynamodbav:"customer_name"`
	Address       string `dynamodbav:"address"`
	Phone         string `dynamodbav:"phone"`
	ScheduledAt   string `dynamodbav:"scheduled_at"`
	ServiceType   string `dynamodbav:"service_type"`
	Status        string `dynamodbav:"status"`
	BeforePhotos  string `dynamodbav:"before_photos"`
	AfterPhotos   string `dynamodbav:"after_photos"`
	Signature     string `dynamodbav:"signature"`
	Price         string `dynamodbav:"price"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Installments  int    `dynamodbav:"installments"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Photo collections are stored as JSON array strings, the same shape the
// SQLite backend uses.

type JobDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// List returns every job, most recently scheduled first.
func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(raw))
	for _, m := range raw {
		var it jobItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].ScheduledAt.After(jobs[b].ScheduledAt)
	})
	return jobs, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, id string, changes entities.JobChanges) (int64, error) {
	values, err := jobAttributeValues(changes)
	if err != nil {
		return 0, err
	}
	return updateItem(ctx, r.ddb, r.tableName, id, values)
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) (int64, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func jobAttributeValues(changes entities.JobChanges) (map[string]types.AttributeValue, error) {
	values := make(map[string]types.AttributeValue, len(changes))
	for f, v := range changes {
		if !f.IsMutable() {
			return nil, fmt.Errorf("job field %q is not writable", f)
		}
		av, err := attributeValue(v)
		if err != nil {
			return nil, fmt.Errorf("job field %q: %w", f, err)
		}
		values[string(f)] = av
	}
	return values, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:            j.ID,
		CustomerName:  j.CustomerName,
		Address:       j.Address,
		Phone:         j.Phone,
		ScheduledAt:   timeToString(j.ScheduledAt),
		ServiceType:   j.ServiceType,
		Status:        string(j.Status),
		BeforePhotos:  j.BeforePhotos.Encode(),
		AfterPhotos:   j.AfterPhotos.Encode(),
		Signature:     j.Signature,
		Price:         j.Price.String(),
		PaymentMethod: j.PaymentMethod,
		Installments:  j.Installments,
		CreatedAt:     timeToString(j.CreatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		Address:       it.Address,
		Phone:         it.Phone,
		ScheduledAt:   parseTime(it.ScheduledAt),
		ServiceType:   it.ServiceType,
		Status:        entities.JobStatus(it.Status),
		BeforePhotos:  decodePhotos(it.ID, it.BeforePhotos),
		AfterPhotos:   decodePhotos(it.ID, it.AfterPhotos),
		Signature:     it.Signature,
		Price:         parseDecimal(it.Price),
		PaymentMethod: it.PaymentMethod,
		Installments:  it.Installments,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

// decodePhotos never fails a read: a corrupted collection is logged and
// surfaced as empty.
func decodePhotos(jobID, raw string) entities.PhotoList {
	photos, err := entities.DecodePhotoList(raw)
	if err != nil {
		logrus.WithField("job_id", jobID).WithError(err).Warn("[job][repository] unreadable photo collection")
		return entities.PhotoList{}
	}
	return photos
}
