package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coversheet_backend/internal/middleware"
	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

// AuthController issues the tokens the hard-delete endpoint requires.
type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func validateAndNormalizeRole(role string) (string, error) {
	switch role {
	case "":
		return "office", nil
	case "admin", "office", "driver":
		return role, nil
	}
	return "", errors.New("role must be one of admin, office, driver")
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "could not hash password")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := ctl.db.Create(&user).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Error(c, http.StatusConflict, "email already in use")
			return
		}
		logrus.WithError(err).Error("Signup: could not create user")
		response.Error(c, http.StatusInternalServerError, "could not create user")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	err := ctl.db.Where("email = ?", input.Email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Login: could not fetch user")
		response.Error(c, http.StatusInternalServerError, "could not fetch user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
