package model

type Customer struct {
	DTO
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Phone string `json:"phone"`
}

type Customers []Customer

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey" query:"searchKey"`
}
