package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating is only ever filtered by product or seller; the rest is opaque.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"productId,omitempty"`
	SellerID  string             `bson:"sellerId,omitempty"`
	Extra     Document           `bson:",inline"`
}

// UnmarshalBSON reads productId and sellerId in their string form whatever
// type the writer used.
func (r *Rating) UnmarshalBSON(data []byte) error {
	doc, err := decodeBSON(data)
	if err != nil {
		return err
	}

	*r = Rating{Extra: make(Document, len(doc))}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				r.ID = oid
			} else {
				r.Extra[k] = v
			}
		case "productId":
			r.ProductID = doc.StringOf(k)
		case "sellerId":
			r.SellerID = doc.StringOf(k)
		default:
			r.Extra[k] = v
		}
	}
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	known := Document{}
	if !r.ID.IsZero() {
		known["_id"] = r.ID
	}
	if r.ProductID != "" {
		known["productId"] = r.ProductID
	}
	if r.SellerID != "" {
		known["sellerId"] = r.SellerID
	}
	return marshalDocument(r.Extra, known)
}
