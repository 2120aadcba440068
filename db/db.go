package db

import (
	"errors"
	"fmt"

	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var ErrNotFound = errors.New("tune not found")

var ErrTooManyTitles = fmt.Errorf("not supposed to ask for more than %d tunes at once", constants.MaxBatchTunes)

type tuneItem struct {
	PK          string            `dynamodbav:"PK"`
	Language    string            `dynamodbav:"Language,omitempty"`
	Key         string            `dynamodbav:"Key,omitempty"`
	Meter       string            `dynamodbav:"Meter,omitempty"`
	BPM         float64           `dynamodbav:"BPM,omitempty"`
	Instrument  string            `dynamodbav:"Instrument,omitempty"`
	Parts       map[string]string `dynamodbav:"Parts"`
	Arrangement []string          `dynamodbav:"Arrangement,omitempty"`
	PartOrder   []string          `dynamodbav:"PartOrder,omitempty"`
}

func toItem(t model.Tune) tuneItem {
	return tuneItem{
		PK:          t.Title,
		Language:    t.Language,
		Key:         t.Key,
		Meter:       t.Meter,
		BPM:         t.BPM,
		Instrument:  t.Instrument,
		Parts:       t.Parts,
		Arrangement: t.Arrangement,
		PartOrder:   t.PartOrder,
	}
}

func (i tuneItem) toTune() model.Tune {
	return model.Tune{
		Title:       i.PK,
		Language:    i.Language,
		Key:         i.Key,
		Meter:       i.Meter,
		BPM:         i.BPM,
		Instrument:  i.Instrument,
		Parts:       i.Parts,
		Arrangement: i.Arrangement,
		PartOrder:   i.PartOrder,
	}
}

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// New connects to the table named by constants.TunesTable at
// DYNAMO_ENDPOINT.
func New() (*Store, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewWithClient(dynamodb.New(sess)), nil
}

func NewWithClient(client dynamodbiface.DynamoDBAPI) *Store {
	return &Store{client: client, table: constants.TunesTable}
}

// GetTunes returns the stored tunes keyed by title. Missing titles are
// simply absent from the result.
func (s *Store) GetTunes(titles []string) (map[string]model.Tune, error) {
	if len(titles) > constants.MaxBatchTunes {
		return nil, ErrTooManyTitles
	}

	res := make(map[string]model.Tune)

	if len(titles) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, title := range titles {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(title),
		}
		keys = append(keys, key)
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			s.table: {Keys: keys},
		},
	}
	dbres, err := s.client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[s.table] {
		var item tuneItem
		if err := dynamodbattribute.UnmarshalMap(v, &item); err != nil {
			return nil, fmt.Errorf("could not decode tune item: %w", err)
		}
		res[item.PK] = item.toTune()
	}

	return res, nil
}

func (s *Store) GetTune(title string) (model.Tune, error) {
	tunes, err := s.GetTunes([]string{title})
	if err != nil {
		return model.Tune{}, err
	}
	t, ok := tunes[title]
	if !ok {
		return model.Tune{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return t, nil
}

func (s *Store) PutTune(t model.Tune) error {
	if t.Title == "" {
		return errors.New("a stored tune needs a title")
	}
	item, err := dynamodbattribute.MarshalMap(toItem(t))
	if err != nil {
		return fmt.Errorf("could not encode tune: %w", err)
	}
	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %w", err)
	}
	return nil
}
