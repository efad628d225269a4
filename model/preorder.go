package model

import "restaurant_manager/constants"

// PreOrderParent is the tagged reference to the booking or event that owns a
// pre-order. Kind discriminates which table ID points into; the constructors
// below are the only way handlers build one, so kind and id stay coherent.
type PreOrderParent struct {
	Kind string `gorm:"column:parent_type;size:10;index:idx_preorder_parent" json:"kind"`
	ID   uint   `gorm:"column:parent_id;index:idx_preorder_parent" json:"id"`
}

func BookingParent(id uint) PreOrderParent {
	return PreOrderParent{Kind: constants.ParentTable, ID: id}
}

func EventParent(id uint) PreOrderParent {
	return PreOrderParent{Kind: constants.ParentEvent, ID: id}
}

func (p PreOrderParent) IsBooking() bool { return p.Kind == constants.ParentTable }
func (p PreOrderParent) IsEvent() bool   { return p.Kind == constants.ParentEvent }

// PreOrderItem snapshots the menu entry's name and price at creation time;
// later menu edits never change an existing ledger line.
type PreOrderItem struct {
	DTO
	PreOrderID uint    `json:"preOrderId"`
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

type PreOrder struct {
	DTO
	PublicCode string         `gorm:"size:20;uniqueIndex" json:"publicCode"`
	Parent     PreOrderParent `gorm:"embedded" json:"parent"`
	Items      []PreOrderItem `gorm:"foreignKey:PreOrderID" json:"items"`

	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grandTotal"`

	Status string `gorm:"size:20;not null;default:'PENDING'" json:"status"`
}

type PreOrderLineInput struct {
	MenuItemID uint `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

type CreatePreOrderInput struct {
	ParentID   uint                `json:"parentId" validate:"required,gt=0"`
	ParentType string              `json:"parentType" validate:"required,oneof=TABLE EVENT"`
	Items      []PreOrderLineInput `json:"items" validate:"required,min=1,dive"`
}

type UpdatePreOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}
