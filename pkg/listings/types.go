package listings

// Community is a named group of apartments.
type Community struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Apartment is a single listed unit. Nullable backend columns map to
// pointer fields; CommunityName is derived server-side and read-only.
type Apartment struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	ApartmentNumber *string  `json:"apartmentNumber,omitempty"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	Sqft            *int     `json:"sqft"`
	Available       bool     `json:"available"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Address         *string  `json:"address"`
	CommunityID     *int64   `json:"communityId"`
	CommunityName   string   `json:"communityName,omitempty"`
}

// ApartmentUpload is the create/batch payload shape. It mirrors Apartment
// minus the backend-assigned fields, and CommunityID is loosely typed:
// a number when the source value parses as one, otherwise the raw string
// is passed through untouched for the backend to reject or resolve.
type ApartmentUpload struct {
	Title           *string  `json:"title"`
	ApartmentNumber *string  `json:"apartmentNumber"`
	CommunityID     any      `json:"communityId"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price"`
	Bedrooms        *float64 `json:"bedrooms"`
	Bathrooms       *float64 `json:"bathrooms"`
	Sqft            *float64 `json:"sqft"`
	Address         *string  `json:"address"`
	Available       bool     `json:"available"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// User is a backend account.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminRegisterRequest is the admin-driven account creation payload.
// Roles is sent as an array even for a single role.
type AdminRegisterRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
