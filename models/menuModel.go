package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

type MenuItem struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required"`
	CategoryID  int            `json:"categoryId"`
	ImageUrl    string         `json:"imageUrl"`
	Available   bool           `json:"available"`
	Tags        datatypes.JSON `json:"tags"`
}
