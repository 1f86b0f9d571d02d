package models

const (
	CategoryWeddings  = "weddings"
	CategoryPortraits = "portraits"
	CategoryEvents    = "events"
	CategoryCorporate = "corporate"
)

func IsValidCategory(category string) bool {
	switch category {
	case CategoryWeddings, CategoryPortraits, CategoryEvents, CategoryCorporate:
		return true
	}
	return false
}
