package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ProductID string  `dynamodbav:"product_id,omitempty"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Qty       int     `dynamodbav:"qty"`
	Image     string  `dynamodbav:"image,omitempty"`
}

type customerInfoItem struct {
	FirstName string `dynamodbav:"first_name,omitempty"`
	LastName  string `dynamodbav:"last_name,omitempty"`
	Name      string `dynamodbav:"name,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
}

type auditEntryItem struct {
	Action string `dynamodbav:"action"`
	Note   string `dynamodbav:"note"`
	At     string `dynamodbav:"at"`
}

type orderItem struct {
	ID        string           `dynamodbav:"id"`
	Items     []orderLineItem  `dynamodbav:"items"`
	Total     float64          `dynamodbav:"total"`
	Status    string           `dynamodbav:"status"`
	Customer  customerInfoItem `dynamodbav:"customer"`
	Notes     string           `dynamodbav:"notes,omitempty"`
	Audit     []auditEntryItem `dynamodbav:"audit"`
	CreatedAt string           `dynamodbav:"created_at"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The audit log lives inside the order item and is only ever touched with
// list_append inside a conditional update, so concurrent status changes
// cannot drop entries.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, ident entities.Identity) ([]entities.Order, error) {
	orders := []entities.Order{}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o := fromOrderItem(it)
			if !ident.IsZero() && !matchesCustomer(o.Customer, ident) {
				continue
			}
			orders = append(orders, o)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// matchesCustomer is the list-filter check: any supplied identity field that
// equals the stored snapshot counts as a match.
func matchesCustomer(c entities.CustomerInfo, ident entities.Identity) bool {
	stored := c.Identity()
	if ident.Email != "" && stored.Email == ident.Email {
		return true
	}
	if ident.Phone != "" && stored.Phone == ident.Phone {
		return true
	}
	return false
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error) {
	entryAV, err := marshalAuditEntry(entry)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :from",
		"SET #status = :to, #updated_at = :updated_at, #audit = list_append(if_not_exists(#audit, :empty), :entry)",
		map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(entry.At)},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":      entryAV,
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#audit":      "audit",
		},
	)
}

func (r *OrderDynamoRepository) ForceStatus(ctx context.Context, id string, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error) {
	entryAV, err := marshalAuditEntry(entry)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #status = :to, #updated_at = :updated_at, #audit = list_append(if_not_exists(#audit, :empty), :entry)",
		map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(entry.At)},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":      entryAV,
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#audit":      "audit",
		},
	)
}

func (r *OrderDynamoRepository) SetNotes(ctx context.Context, id, notes string, at time.Time) (entities.Order, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #notes = :notes, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
	)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	conditionExpr string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func marshalAuditEntry(entry entities.AuditEntry) (types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(auditEntryItem{
		Action: entry.Action,
		Note:   entry.Note,
		At:     formatTime(entry.At),
	})
	if err != nil {
		return nil, err
	}
	// list_append appends list to list, so the single entry is wrapped.
	return &types.AttributeValueMemberL{
		Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: av}},
	}, nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Qty:       li.Qty,
			Image:     li.Image,
		})
	}
	audit := make([]auditEntryItem, 0, len(o.Audit))
	for _, e := range o.Audit {
		audit = append(audit, auditEntryItem{Action: e.Action, Note: e.Note, At: formatTime(e.At)})
	}
	return orderItem{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		Status:    string(o.Status),
		Customer:  toCustomerInfoItem(o.Customer),
		Notes:     o.Notes,
		Audit:     audit,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Qty:       li.Qty,
			Image:     li.Image,
		})
	}
	audit := make([]entities.AuditEntry, 0, len(it.Audit))
	for _, e := range it.Audit {
		audit = append(audit, entities.AuditEntry{Action: e.Action, Note: e.Note, At: parseTime(e.At)})
	}
	return entities.Order{
		ID:        it.ID,
		Items:     items,
		Total:     it.Total,
		Status:    entities.OrderStatus(it.Status),
		Customer:  fromCustomerInfoItem(it.Customer),
		Notes:     it.Notes,
		Audit:     audit,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toCustomerInfoItem(c entities.CustomerInfo) customerInfoItem {
	return customerInfoItem{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func fromCustomerInfoItem(it customerInfoItem) entities.CustomerInfo {
	return entities.CustomerInfo{
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
	}
}
