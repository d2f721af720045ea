package rental

import "strings"

// Client is identified by its name. Names are not unique; lookups use the
// first record in store order.
type Client struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// NewClient trims the input and requires name and phone. Email is free text.
func NewClient(name, phone, email string) (Client, error) {
	c := Client{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	}
	v := Violations{}
	Required("name", c.Name, v)
	Required("phone", c.Phone, v)
	if err := v.Err(); err != nil {
		return Client{}, err
	}
	return c, nil
}
