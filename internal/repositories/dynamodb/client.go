package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// PartitionKey is the DynamoDB partition key attribute name.
	PartitionKey = "id"

	// TitleAttr holds the todo title as a string.
	TitleAttr = "title"

	// CompletedAttr holds the completion flag as a boolean.
	CompletedAttr = "completed"
)

// API is the subset of the DynamoDB client used by [Client].
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Client is a DynamoDB-backed implementation of [repositories.TodoRepository].
//
// Use [New] to create a Client, [Client.Connect] to initialize the underlying
// DynamoDB connection, and [Client.Init] to validate the table schema.
type Client struct {
	client    API
	tableName string
	awsCfg    *aws.Config
	opts      *Options
}

var (
	_ repositories.TodoRepository = (*Client)(nil)
	_ repositories.HealthChecker  = (*Client)(nil)
)

// New creates a new Client configured with the given AWS config, table name,
// and optional options. Call [Client.Connect] on the returned client before use.
func New(awsCfg *aws.Config, tableName string, opts ...Option) *Client {
	options := newOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		awsCfg:    awsCfg,
		tableName: tableName,
		opts:      options,
	}
}

// Connect initializes the DynamoDB client from the AWS config provided to [New].
// It must be called before any other Client methods, and must complete before
// the Client is used concurrently.
func (c *Client) Connect() error {
	if c.tableName == "" {
		return errors.New("table name must not be empty")
	}

	if err := c.opts.validate(); err != nil {
		return fmt.Errorf("invalid DynamoDB options: %w", err)
	}

	// Use injected DynamoDB API if provided (useful for testing).
	if c.opts.dynamoDBAPI != nil {
		c.client = c.opts.dynamoDBAPI
		return nil
	}

	if c.awsCfg == nil {
		return errors.New("aws config must not be nil")
	}

	c.client = dynamodb.NewFromConfig(*c.awsCfg, func(o *dynamodb.Options) {
		if c.opts.endpoint != "" {
			o.BaseEndpoint = aws.String(c.opts.endpoint)
		}
	})

	return nil
}

// TableName returns the name of the backing table.
func (c *Client) TableName() string {
	return c.tableName
}

// Init validates the DynamoDB table schema. It checks that the table exists,
// is active, and has a simple primary key on the string attribute "id".
//
// Pass skipSchemaValidation true to skip all checks and return immediately.
func (c *Client) Init(ctx context.Context, skipSchemaValidation bool) error {
	if skipSchemaValidation {
		return nil
	}

	response, err := c.describeTable(ctx)
	if err != nil {
		return err
	}

	table := response.Table
	if table == nil || len(table.KeySchema) < 1 {
		return fmt.Errorf("%w: table %s has no key schema", repositories.ErrSchema, c.tableName)
	}

	if len(table.KeySchema) > 1 {
		return fmt.Errorf("%w: table %s has a composite primary key, expected a partition key only", repositories.ErrSchema, c.tableName)
	}

	key := table.KeySchema[0]
	if aws.ToString(key.AttributeName) != PartitionKey || key.KeyType != dynamodbtypes.KeyTypeHash {
		return fmt.Errorf("%w: table %s has partition key %s, expected %s", repositories.ErrSchema, c.tableName, aws.ToString(key.AttributeName), PartitionKey)
	}

	for _, def := range table.AttributeDefinitions {
		if aws.ToString(def.AttributeName) == PartitionKey && def.AttributeType != dynamodbtypes.ScalarAttributeTypeS {
			return fmt.Errorf("%w: partition key %s of table %s has type %s, expected S", repositories.ErrSchema, PartitionKey, c.tableName, def.AttributeType)
		}
	}

	if table.TableStatus != dynamodbtypes.TableStatusActive {
		return fmt.Errorf("%w: table %s is not active (status: %s)", repositories.ErrSchema, c.tableName, table.TableStatus)
	}

	return nil
}

// HealthCheck verifies that the table can be described.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.describeTable(ctx)
	return err
}

func (c *Client) describeTable(ctx context.Context) (*dynamodb.DescribeTableOutput, error) {
	input := &dynamodb.DescribeTableInput{
		TableName: aws.String(c.tableName),
	}

	response, err := c.client.DescribeTable(ctx, input)
	if err != nil {
		var notFoundError *dynamodbtypes.ResourceNotFoundException
		if errors.As(err, &notFoundError) {
			return nil, fmt.Errorf("%w: table %s does not exist", repositories.ErrSchema, c.tableName)
		}
		return nil, repositories.ConnectionError(fmt.Errorf("failed to describe table %s: %w", c.tableName, err))
	}

	return response, nil
}

// CreateTodo writes the todo with an unconditional PutItem. An existing item
// with the same id is replaced.
func (c *Client) CreateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error) {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]dynamodbtypes.AttributeValue{
			PartitionKey:  &dynamodbtypes.AttributeValueMemberS{Value: todo.ID},
			TitleAttr:     &dynamodbtypes.AttributeValueMemberS{Value: todo.Title},
			CompletedAttr: &dynamodbtypes.AttributeValueMemberBOOL{Value: todo.Completed},
		},
	}

	if _, err := c.client.PutItem(ctx, input); err != nil {
		return nil, repositories.StorageError(repositories.OpCreate, todo.ID, fmt.Errorf("failed to write todo to DynamoDB table %s: %w", c.tableName, err))
	}

	return models.NewItemResponse(todo), nil
}

// UpdateTodo sets title and completed on an existing item and returns the
// post-update image. The write is conditioned on attribute_exists(id) so
// that an unknown id reports 404 instead of creating a new item.
func (c *Client) UpdateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error) {
	update := expression.
		Set(expression.Name(CompletedAttr), expression.Value(todo.Completed)).
		Set(expression.Name(TitleAttr), expression.Value(todo.Title))
	condition := expression.AttributeExists(expression.Name(PartitionKey))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(condition).Build()
	if err != nil {
		return nil, repositories.StorageError(repositories.OpUpdate, todo.ID, fmt.Errorf("failed to build update expression: %w", err))
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(c.tableName),
		Key:                       keyOf(todo.ID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              dynamodbtypes.ReturnValueAllNew,
	}

	output, err := c.client.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *dynamodbtypes.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return models.NewNotFoundResponse(), nil
		}
		return nil, repositories.StorageError(repositories.OpUpdate, todo.ID, fmt.Errorf("failed to update todo in DynamoDB table %s: %w", c.tableName, err))
	}

	if len(output.Attributes) == 0 {
		return models.NewNotFoundResponse(), nil
	}

	return models.NewItemResponse(todoFromItem(output.Attributes)), nil
}

// ReadTodo fetches a single todo by id.
func (c *Client) ReadTodo(ctx context.Context, id string) (*models.Response, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key:       keyOf(id),
	}

	output, err := c.client.GetItem(ctx, input)
	if err != nil {
		return nil, repositories.StorageError(repositories.OpRead, id, fmt.Errorf("failed to read todo from DynamoDB table %s: %w", c.tableName, err))
	}

	if len(output.Item) == 0 {
		return models.NewNotFoundResponse(), nil
	}

	return models.NewItemResponse(todoFromItem(output.Item)), nil
}

// DeleteTodo removes a single todo by id. The pre-delete image tells whether
// the item existed.
func (c *Client) DeleteTodo(ctx context.Context, id string) (*models.Response, error) {
	input := &dynamodb.DeleteItemInput{
		TableName:    aws.String(c.tableName),
		Key:          keyOf(id),
		ReturnValues: dynamodbtypes.ReturnValueAllOld,
	}

	output, err := c.client.DeleteItem(ctx, input)
	if err != nil {
		return nil, repositories.StorageError(repositories.OpDelete, id, fmt.Errorf("failed to delete todo from DynamoDB table %s: %w", c.tableName, err))
	}

	if len(output.Attributes) == 0 {
		return models.NewDeleteNotFoundResponse(), nil
	}

	return models.NewDeletedResponse(), nil
}

func keyOf(id string) map[string]dynamodbtypes.AttributeValue {
	return map[string]dynamodbtypes.AttributeValue{
		PartitionKey: &dynamodbtypes.AttributeValueMemberS{Value: id},
	}
}

// todoFromItem rebuilds a todo from an attribute map. Missing or wrongly
// typed attributes fall back to their zero value.
func todoFromItem(item map[string]dynamodbtypes.AttributeValue) models.ToDo {
	return models.ToDo{
		ID:        getStringValue(item[PartitionKey]),
		Title:     getStringValue(item[TitleAttr]),
		Completed: getBoolValue(item[CompletedAttr]),
	}
}

func getStringValue(attr dynamodbtypes.AttributeValue) string {
	if attrValue, ok := attr.(*dynamodbtypes.AttributeValueMemberS); ok {
		return attrValue.Value
	}

	return ""
}

func getBoolValue(attr dynamodbtypes.AttributeValue) bool {
	if attrValue, ok := attr.(*dynamodbtypes.AttributeValueMemberBOOL); ok {
		return attrValue.Value
	}

	return false
}
