package models

// Factory is a row of the factory reference table.
type Factory struct {
	FactoryID string `db:"factory_id"`
	Name      string `db:"name"`
}

// Product is a row of the product (grade) reference table.
type Product struct {
	ProductID string    `db:"product_id"`
	CropName  string    `db:"crop_name"`
	Pool      StockPool `db:"pool"`
}

// SupplyUnit is a row of the supply_unit reference table.
type SupplyUnit struct {
	SupplyUnitID string `db:"supply_unit_id"`
	Name         string `db:"name"`
}
