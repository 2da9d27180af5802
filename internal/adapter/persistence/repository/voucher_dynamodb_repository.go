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

const defaultVouchersTableName = "vouchers"

type voucherItem struct {
	Code          string  `dynamodbav:"code"`
	Amount        float64 `dynamodbav:"amount"`
	Used          bool    `dynamodbav:"used"`
	AssignedEmail string  `dynamodbav:"assigned_email,omitempty"`
	AssignedPhone string  `dynamodbav:"assigned_phone,omitempty"`
	UsedAt        string  `dynamodbav:"used_at,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// VoucherDynamoRepository persists Voucher entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string, case-sensitive)
//
// Create and Redeem are single conditional writes; the used flag can never
// be won by two concurrent redemptions.

type VoucherDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVoucherRepository = (*VoucherDynamoRepository)(nil)

func NewVoucherDynamoRepository(ddb *dynamodb.Client) *VoucherDynamoRepository {
	return &VoucherDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
	}
}

func (r *VoucherDynamoRepository) Create(ctx context.Context, v entities.Voucher) (entities.Voucher, error) {
	av, err := attributevalue.MarshalMap(toVoucherItem(v))
	if err != nil {
		return entities.Voucher{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Voucher{}, nil
		}
		return entities.Voucher{}, err
	}
	return v, nil
}

func (r *VoucherDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Voucher, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Voucher{}, err
	}
	if len(out.Item) == 0 {
		return entities.Voucher{}, nil
	}

	var it voucherItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Voucher{}, err
	}
	return fromVoucherItem(it), nil
}

func (r *VoucherDynamoRepository) List(ctx context.Context) ([]entities.Voucher, error) {
	return r.scan(ctx, func(entities.Voucher) bool { return true })
}

func (r *VoucherDynamoRepository) ListByIdentity(ctx context.Context, ident entities.Identity) ([]entities.Voucher, error) {
	return r.scan(ctx, func(v entities.Voucher) bool {
		if ident.Email != "" && v.AssignedTo.Email == ident.Email {
			return true
		}
		if ident.Phone != "" && v.AssignedTo.Phone == ident.Phone {
			return true
		}
		return false
	})
}

func (r *VoucherDynamoRepository) scan(ctx context.Context, keep func(entities.Voucher) bool) ([]entities.Voucher, error) {
	vouchers := []entities.Voucher{}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []voucherItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			v := fromVoucherItem(it)
			if keep(v) {
				vouchers = append(vouchers, v)
			}
		}
	}

	sort.SliceStable(vouchers, func(i, j int) bool {
		return vouchers[i].CreatedAt.After(vouchers[j].CreatedAt)
	})
	return vouchers, nil
}

func (r *VoucherDynamoRepository) Assign(ctx context.Context, code string, ident entities.Identity, at time.Time) (entities.Voucher, error) {
	return r.update(ctx, code,
		"attribute_exists(#code)",
		"SET #assigned_email = :email, #assigned_phone = :phone, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":email":      &types.AttributeValueMemberS{Value: ident.Email},
			":phone":      &types.AttributeValueMemberS{Value: ident.Phone},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#assigned_email": "assigned_email",
			"#assigned_phone": "assigned_phone",
			"#updated_at":     "updated_at",
		},
	)
}

func (r *VoucherDynamoRepository) Redeem(ctx context.Context, code string, ident entities.Identity, assign bool, at time.Time) (entities.Voucher, error) {
	updateExpr := "SET #used = :used, #used_at = :at, #updated_at = :at"
	values := map[string]types.AttributeValue{
		":used":     &types.AttributeValueMemberBOOL{Value: true},
		":at":       &types.AttributeValueMemberS{Value: formatTime(at)},
		":not_used": &types.AttributeValueMemberBOOL{Value: false},
	}
	names := map[string]string{
		"#used":       "used",
		"#used_at":    "used_at",
		"#updated_at": "updated_at",
	}
	if assign {
		updateExpr += ", #assigned_email = :email, #assigned_phone = :phone"
		values[":email"] = &types.AttributeValueMemberS{Value: ident.Email}
		values[":phone"] = &types.AttributeValueMemberS{Value: ident.Phone}
		names["#assigned_email"] = "assigned_email"
		names["#assigned_phone"] = "assigned_phone"
	}

	return r.update(ctx, code,
		"attribute_exists(#code) AND #used = :not_used",
		updateExpr,
		values,
		names,
	)
}

func (r *VoucherDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *VoucherDynamoRepository) update(
	ctx context.Context,
	code string,
	conditionExpr string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Voucher, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#code": "code"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Voucher{}, nil
		}
		return entities.Voucher{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Voucher{}, nil
	}
	var it voucherItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Voucher{}, err
	}
	return fromVoucherItem(it), nil
}

func toVoucherItem(v entities.Voucher) voucherItem {
	return voucherItem{
		Code:          v.Code,
		Amount:        v.Amount,
		Used:          v.Used,
		AssignedEmail: v.AssignedTo.Email,
		AssignedPhone: v.AssignedTo.Phone,
		UsedAt:        formatTimePtr(v.UsedAt),
		CreatedAt:     formatTime(v.CreatedAt),
		UpdatedAt:     formatTime(v.UpdatedAt),
	}
}

func fromVoucherItem(it voucherItem) entities.Voucher {
	return entities.Voucher{
		Code:       it.Code,
		Amount:     it.Amount,
		Used:       it.Used,
		AssignedTo: entities.Identity{Email: it.AssignedEmail, Phone: it.AssignedPhone},
		UsedAt:     parseTimePtr(it.UsedAt),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
