package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId,omitempty"`
	InStock   bool               `bson:"inStock"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	Extra     Document           `bson:",inline"`
}

// NewProduct builds a product from a request body. inStock and createdAt are
// always set by the server, whatever the body carried.
func NewProduct(body Document, now time.Time) Product {
	p := Product{
		InStock:   true,
		CreatedAt: now,
		Extra:     make(Document, len(body)),
	}
	for k, v := range body {
		switch k {
		case "_id", "inStock", "createdAt":
		case "userId":
			p.UserID = body.StringOf(k)
		default:
			p.Extra[k] = v
		}
	}
	return p
}

// ProductUpdate filters a $set body so the stored document keeps decoding as
// a Product: _id and createdAt are immutable, userId is stored as a string
// and a non-boolean inStock is ignored.
func ProductUpdate(fields Document) Document {
	out := make(Document, len(fields))
	for k, v := range fields {
		switch k {
		case "_id", "createdAt":
		case "inStock":
			if b, ok := v.(bool); ok {
				out[k] = b
			}
		case "userId":
			if v == nil {
				out[k] = nil
			} else {
				out[k] = fields.StringOf(k)
			}
		default:
			out[k] = v
		}
	}
	return out
}

// UnmarshalBSON accepts documents written by other clients. Known fields of
// an unexpected type are coerced (userId) or left in Extra (_id, createdAt);
// a non-boolean inStock reads as false.
func (p *Product) UnmarshalBSON(data []byte) error {
	doc, err := decodeBSON(data)
	if err != nil {
		return err
	}

	*p = Product{Extra: make(Document, len(doc))}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				p.ID = oid
			} else {
				p.Extra[k] = v
			}
		case "userId":
			p.UserID = doc.StringOf(k)
		case "inStock":
			p.InStock, _ = v.(bool)
		case "createdAt":
			if dt, ok := v.(primitive.DateTime); ok {
				p.CreatedAt = dt.Time().UTC()
			} else {
				p.Extra[k] = v
			}
		default:
			p.Extra[k] = v
		}
	}
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	known := Document{"inStock": p.InStock}
	if !p.ID.IsZero() {
		known["_id"] = p.ID
	}
	if p.UserID != "" {
		known["userId"] = p.UserID
	}
	if !p.CreatedAt.IsZero() {
		known["createdAt"] = p.CreatedAt
	}
	return marshalDocument(p.Extra, known)
}
