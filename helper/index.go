package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FirstOrCreateCustomer resolves a booking's guest contact to a customer row,
// keyed by email.
func FirstOrCreateCustomer(tx *gorm.DB, name, email, phone string) (*model.Customer, error) {
	customer := model.Customer{Name: name, Email: email, Phone: phone}
	if err := tx.Where(model.Customer{Email: email}).FirstOrCreate(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = claim.Username
	claims["accountId"] = claim.AccountId
	claims["role"] = claim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = claim.Username
	claims["accountId"] = claim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoAccountFromToken returns the caller's claim plus role flags
// (admin, manager, staff). The account is re-read so a deactivated account
// loses access immediately.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false, false
	}
	idFloat, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)

	var account model.Account
	if err := database.DB.First(&account, uint(idFloat)).Error; err != nil || !account.Active {
		return model.TokenClaim{}, false, false, false
	}

	info := model.TokenClaim{
		AccountId: account.ID,
		Username:  username,
		Role:      account.Role,
	}
	return info,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_MANAGER,
		account.Role == constants.ROLE_STAFF
}
