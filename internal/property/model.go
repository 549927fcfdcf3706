package property

// SimplifiedProperty is the fixed shape served to clients and fed to the summary prompt.
type SimplifiedProperty struct {
	Address      Text     `json:"address"`
	City         Text     `json:"city"`
	State        Text     `json:"state"`
	Zipcode      Text     `json:"zipcode"`
	Country      Text     `json:"country"`
	Size         Text     `json:"size"`
	Bedrooms     Text     `json:"bedrooms"`
	Bathrooms    Text     `json:"bathrooms"`
	YearBuilt    Text     `json:"year_built"`
	HomeType     Text     `json:"home_type"`
	Price        Text     `json:"price"`
	PricePerSqft Text     `json:"price_per_sqft"`
	LotSize      Text     `json:"lot_size"`
	Description  Text     `json:"description"`
	Schools      []School `json:"schools"`
	ImageURL     Text     `json:"image_url"`
	ZillowURL    Text     `json:"zillow_url"`
}

type School struct {
	Name     Text `json:"name"`
	Distance Text `json:"distance"`
	Rating   Text `json:"rating"`
	Grades   Text `json:"grades"`
}
