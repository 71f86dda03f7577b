package bulkimport

import (
	"strconv"
	"strings"

	"github.com/me/lettings/pkg/listings"
)

// Normalize converts one raw row into an upload record. Pure and total:
// no input makes it fail. Empty or unparseable numeric cells become nil
// (the backend sees null, same as an absent value); a communityId that
// does not parse as a number is passed through as the raw string.
func Normalize(row Row) listings.ApartmentUpload {
	return listings.ApartmentUpload{
		Title:           optString(row["title"]),
		ApartmentNumber: optString(row["apartmentNumber"]),
		CommunityID:     communityRef(row["communityId"]),
		Price:           optNumber(row["price"]),
		Bedrooms:        optNumber(row["bedrooms"]),
		Bathrooms:       optNumber(row["bathrooms"]),
		Sqft:            optNumber(row["sqft"]),
		Address:         optString(row["address"]),
		Available:       parseAvailable(row["available"]),
		Latitude:        optNumber(row["latitude"]),
		Longitude:       optNumber(row["longitude"]),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func communityRef(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseAvailable treats exactly "1", "true", and "yes" (trimmed,
// case-insensitive) as true; everything else, including empty, is false.
func parseAvailable(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
