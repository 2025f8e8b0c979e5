package domain

// Factory is a processing site. Reference data, managed elsewhere.
type Factory struct {
	FactoryID string `json:"factoryID"`
	Name      string `json:"name"`
}

// Product is a crop grade, raw or processed. Reference data, managed
// elsewhere; Pool says which stock pool entries for this grade live in.
type Product struct {
	ProductID string    `json:"productID"`
	CropName  string    `json:"cropName"`
	Pool      StockPool `json:"pool"`
}

// SupplyUnit is an origin unit for crop deliveries. Reference data.
type SupplyUnit struct {
	SupplyUnitID string `json:"supplyUnitID"`
	Name         string `json:"name"`
}
