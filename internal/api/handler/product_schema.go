package handler

import "encoding/json"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// priceValue accepts a price supplied either as a JSON number or as a string
// (the storefront form posts strings). The raw text is kept as-is; parsing
// and range checks happen in the catalog service. set distinguishes an
// absent or null field from a supplied one.
type priceValue struct {
	set bool
	raw string
}

func (p *priceValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.raw = s
		p.set = true
		return nil
	}
	p.raw = string(data)
	p.set = true
	return nil
}

type createProductRequest struct {
	Name        string     `json:"name"     validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Price       priceValue `json:"price"    swaggertype:"number"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
}

// updateProductRequest carries a partial update: nil (or, for price, unset)
// fields were not supplied and must be left unchanged.
type updateProductRequest struct {
	Name        *string    `json:"name"`
	Category    *string    `json:"category"`
	Price       priceValue `json:"price" swaggertype:"number"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
}
