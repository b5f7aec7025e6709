package model

// OwnerCreate is the registration payload for an EV owner, keyed by NIC.
type OwnerCreate struct {
	NIC      string `json:"nic"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type OwnerUpdate struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
