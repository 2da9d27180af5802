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

const defaultBookingsTableName = "bookings"

type deviceItem struct {
	Type  string `dynamodbav:"type,omitempty"`
	Brand string `dynamodbav:"brand,omitempty"`
	Model string `dynamodbav:"model,omitempty"`
}

type issueItem struct {
	Type        string `dynamodbav:"type,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
}

type serviceOptionsItem struct {
	Urgency       string `dynamodbav:"urgency,omitempty"`
	Location      string `dynamodbav:"location,omitempty"`
	PickupAddress string `dynamodbav:"pickup_address,omitempty"`
	ContactMethod string `dynamodbav:"contact_method,omitempty"`
}

type bookingItem struct {
	ID             string             `dynamodbav:"id"`
	Device         deviceItem         `dynamodbav:"device"`
	Issue          issueItem          `dynamodbav:"issue"`
	ServiceOptions serviceOptionsItem `dynamodbav:"service_options"`
	Customer       customerInfoItem   `dynamodbav:"customer"`
	Status         string             `dynamodbav:"status"`

	QuoteAmount     float64 `dynamodbav:"quote_amount"`
	QuoteNote       string  `dynamodbav:"quote_note,omitempty"`
	QuoteStatus     string  `dynamodbav:"quote_status"`
	QuoteAt         string  `dynamodbav:"quote_at,omitempty"`
	QuoteAcceptedAt string  `dynamodbav:"quote_accepted_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ResolveQuote conditions on quote_status = "proposed" so a concurrent
// accept/decline pair resolves to exactly one winner.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) List(ctx context.Context, ident entities.Identity) ([]entities.Booking, error) {
	bookings := []entities.Booking{}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			b := fromBookingItem(it)
			if !ident.IsZero() && !matchesCustomer(b.Customer, ident) {
				continue
			}
			bookings = append(bookings, b)
		}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *BookingDynamoRepository) SetStatus(ctx context.Context, id string, status entities.BookingStatus, at time.Time) (entities.Booking, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	)
}

func (r *BookingDynamoRepository) ProposeQuote(ctx context.Context, id string, amount float64, note string, at time.Time) (entities.Booking, error) {
	// A re-propose overwrites the whole quote sub-record, including any
	// stale accepted timestamp from a previous cycle.
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #quote_amount = :amount, #quote_note = :note, #quote_status = :proposed, #quote_at = :at, #updated_at = :at REMOVE #quote_accepted_at",
		map[string]types.AttributeValue{
			":amount":   &types.AttributeValueMemberN{Value: floatToString(amount)},
			":note":     &types.AttributeValueMemberS{Value: note},
			":proposed": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusProposed)},
			":at":       &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#quote_amount":      "quote_amount",
			"#quote_note":        "quote_note",
			"#quote_status":      "quote_status",
			"#quote_at":          "quote_at",
			"#quote_accepted_at": "quote_accepted_at",
			"#updated_at":        "updated_at",
		},
	)
}

func (r *BookingDynamoRepository) ResolveQuote(ctx context.Context, id string, to entities.QuoteStatus, at time.Time) (entities.Booking, error) {
	updateExpr := "SET #quote_status = :to, #updated_at = :at REMOVE #quote_accepted_at"
	if to == entities.QuoteStatusAccepted {
		updateExpr = "SET #quote_status = :to, #quote_accepted_at = :at, #updated_at = :at"
	}

	return r.update(ctx, id,
		"attribute_exists(#id) AND #quote_status = :proposed",
		updateExpr,
		map[string]types.AttributeValue{
			":to":       &types.AttributeValueMemberS{Value: string(to)},
			":proposed": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusProposed)},
			":at":       &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#quote_status":      "quote_status",
			"#quote_accepted_at": "quote_accepted_at",
			"#updated_at":        "updated_at",
		},
	)
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	conditionExpr string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Booking, error) {
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
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:     b.ID,
		Device: deviceItem{Type: b.Device.Type, Brand: b.Device.Brand, Model: b.Device.Model},
		Issue:  issueItem{Type: b.Issue.Type, Description: b.Issue.Description},
		ServiceOptions: serviceOptionsItem{
			Urgency:       b.ServiceOptions.Urgency,
			Location:      b.ServiceOptions.Location,
			PickupAddress: b.ServiceOptions.PickupAddress,
			ContactMethod: b.ServiceOptions.ContactMethod,
		},
		Customer:        toCustomerInfoItem(b.Customer),
		Status:          string(b.Status),
		QuoteAmount:     b.QuoteAmount,
		QuoteNote:       b.QuoteNote,
		QuoteStatus:     string(b.QuoteStatus),
		QuoteAt:         formatTimePtr(b.QuoteAt),
		QuoteAcceptedAt: formatTimePtr(b.QuoteAcceptedAt),
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:     it.ID,
		Device: entities.Device{Type: it.Device.Type, Brand: it.Device.Brand, Model: it.Device.Model},
		Issue:  entities.Issue{Type: it.Issue.Type, Description: it.Issue.Description},
		ServiceOptions: entities.ServiceOptions{
			Urgency:       it.ServiceOptions.Urgency,
			Location:      it.ServiceOptions.Location,
			PickupAddress: it.ServiceOptions.PickupAddress,
			ContactMethod: it.ServiceOptions.ContactMethod,
		},
		Customer:        fromCustomerInfoItem(it.Customer),
		Status:          entities.BookingStatus(it.Status),
		QuoteAmount:     it.QuoteAmount,
		QuoteNote:       it.QuoteNote,
		QuoteStatus:     entities.QuoteStatus(it.QuoteStatus),
		QuoteAt:         parseTimePtr(it.QuoteAt),
		QuoteAcceptedAt: parseTimePtr(it.QuoteAcceptedAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
