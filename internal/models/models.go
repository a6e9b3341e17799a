package models

import (
	"time"
)

const (
	RoleBuyer    = "buyer"
	RoleDesigner = "designer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:buyer"   json:"role"`
	Verified     bool   `gorm:"default:false"            json:"verified"`
}

type Design struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DesignerID    uint      `gorm:"index;not null"           json:"designer_id"`
	Title         string    `gorm:"not null"                 json:"title"`
	Description   string    `json:"description"`
	PlanNumber    string    `gorm:"index"                    json:"plan_number"`
	VariantLabel  string    `json:"variant_label"`
	Price         float64   `gorm:"not null"                 json:"price"`
	OriginalPrice float64   `gorm:"not null"                 json:"original_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type CartItem struct {
	ID       uint `gorm:"primaryKey"                  json:"id"`
	UserID   uint `gorm:"index;not null"              json:"user_id"`
	DesignID uint `gorm:"not null"                    json:"design_id"`
	Quantity uint `gorm:"default:1;check:quantity>0"  json:"quantity"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Number    string    `gorm:"unique;not null"  json:"number"`
	UserID    uint      `gorm:"index;not null"   json:"user_id"`
	Total     float64   `gorm:"not null"         json:"total"`
	Status    string    `gorm:"not null"         json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey"     json:"id"`
	OrderID    uint    `gorm:"index;not null" json:"order_id"`
	DesignID   uint    `gorm:"not null"       json:"design_id"`
	Title      string  `json:"title"`
	PlanNumber string  `json:"plan_number"`
	UnitPrice  float64 `gorm:"not null"       json:"unit_price"`
	Quantity   uint    `gorm:"not null"       json:"quantity"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	DesignID  uint      `gorm:"index;not null" json:"design_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Rating    uint      `gorm:"not null"       json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null"       json:"title"`
	Body      string    `gorm:"not null"       json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Body      string    `gorm:"not null"       json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID          uint      `gorm:"primaryKey"     json:"id"`
	DesignerID  uint      `gorm:"index;not null" json:"designer_id"`
	SenderName  string    `gorm:"not null"       json:"sender_name"`
	SenderEmail string    `gorm:"not null"       json:"sender_email"`
	Body        string    `gorm:"not null"       json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type Withdrawal struct {
	ID         uint      `gorm:"primaryKey"               json:"id"`
	DesignerID uint      `gorm:"index;not null"           json:"designer_id"`
	Amount     float64   `gorm:"not null"                 json:"amount"`
	Status     string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ApiToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}
