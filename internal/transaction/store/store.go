package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jmcortinhal/centavo/internal/transaction"
)

// The collection name matches the document kind the previous backend
// wrote, so the store can point at an existing database.
const transactionCollection = "transaction"

// ErrNotConnected is returned when the store was constructed without a
// live database handle.
var ErrNotConnected = errors.New("document store is not connected")

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// document is the persisted shape of a transaction. Conversion to and from
// the domain model happens here, so loosely-shaped legacy records are
// normalized once at the store boundary.
type document struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Amount   float64            `bson:"amount"`
	Type     string             `bson:"type"`
	Category string             `bson:"category"`
	Note     string             `bson:"note,omitempty"`
	Date     time.Time          `bson:"date"`
}

func toDocument(tx *transaction.Transaction) document {
	return document{
		Amount:   tx.Amount,
		Type:     string(tx.Type),
		Category: tx.Category,
		Note:     tx.Note,
		Date:     tx.Date,
	}
}

func fromDocument(d document) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       d.ID.Hex(),
		Amount:   d.Amount,
		Type:     transaction.Type(d.Type),
		Category: d.Category,
		Note:     d.Note,
		Date:     d.Date.UTC(),
	}
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	if s.db == nil {
		return ErrNotConnected
	}

	res, err := s.db.Collection(transactionCollection).InsertOne(ctx, toDocument(tx))
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		tx.ID = id.Hex()
	}

	return nil
}

func (s *Store) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	if s.db == nil {
		return ErrNotConnected
	}

	docs := make([]any, len(txs))
	for i, tx := range txs {
		docs[i] = toDocument(tx)
	}

	res, err := s.db.Collection(transactionCollection).InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("creating transactions: %w", err)
	}

	for i, inserted := range res.InsertedIDs {
		if i >= len(txs) {
			break
		}

		if id, ok := inserted.(primitive.ObjectID); ok {
			txs[i].ID = id.Hex()
		}
	}

	return nil
}

// ListTransactions returns records matching the date range, or every
// record when r is nil. No ordering is imposed.
func (s *Store) ListTransactions(ctx context.Context, r *transaction.Range) ([]*transaction.Transaction, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}

	filter := bson.M{}
	if r != nil {
		filter["date"] = bson.M{"$gte": r.Start, "$lt": r.End}
	}

	cur, err := s.db.Collection(transactionCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer cur.Close(ctx)

	var txs []*transaction.Transaction

	for cur.Next(ctx) {
		var d document
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decoding transaction: %w", err)
		}

		txs = append(txs, fromDocument(d))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}
