package models

// FanSpec is one record of the fan specification database.
type FanSpec struct {
	// Name is the fan model name.
	Name string `json:"name"`
	// Thickness is the frame thickness in mm (nil if unknown).
	Thickness *float64 `json:"thickness"`
	// Bearing is the bearing type.
	Bearing string `json:"bearing"`
	// Size is the frame size in mm (nil if unknown).
	Size *float64 `json:"size"`
	// Brand is the manufacturer.
	Brand string `json:"brand"`
	// Price is the free-form price text.
	Price string `json:"price"`
	// Description is the free-form description.
	Description string `json:"description"`
}

// FanDatabaseMetadata summarizes a fan database export.
type FanDatabaseMetadata struct {
	// Total is the number of fan records.
	Total int `json:"total"`
	// LastUpdated is the export time formatted as "2006-01-02 15:04:05".
	LastUpdated string `json:"lastUpdated"`
}

// FanDatabase is the fan specification database document.
type FanDatabase struct {
	Fans     []FanSpec           `json:"fans"`
	Metadata FanDatabaseMetadata `json:"metadata"`
}
