package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"agorahub/config"
	"agorahub/db"
	"agorahub/models"
	"agorahub/structs"
	"agorahub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resetCodeTTL = 15 * time.Minute

func loadConfig(ctx *gin.Context) *config.Config {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Println("Failed to load config")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil
	}
	return cfg
}

func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.UserByEmail(dbCtx, request.Email); err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	} else if err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	displayName := request.DisplayName
	if displayName == "" {
		displayName = utils.ExtractNameFromEmail(request.Email)
	}

	user := models.User{
		Email:        request.Email,
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if _, err := db.GetCollection("users").InsertOne(dbCtx, user); err != nil {
		log.Printf("Failed to insert user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Sign-up successful"})
}

func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.UserByEmail(dbCtx, request.Email)
	if err != nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}

func VerifyToken(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token format"})
		return
	}

	valid, _, err := utils.ValidateTokenAndFetchEmail(tokenParts[1])
	if err != nil || !valid {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token is valid"})
}

func ForgotPassword(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email format"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Respond identically whether or not the account exists.
	if _, err := db.UserByEmail(dbCtx, request.Email); err != nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
		return
	}

	code := utils.GenerateRandomCode(6)
	reset := models.PasswordReset{
		Email:     request.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := db.GetCollection("password_resets").ReplaceOne(dbCtx, bson.M{"email": request.Email}, reset, opts); err != nil {
		log.Printf("Failed to store reset code: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
		return
	}

	if err := utils.SendPasswordResetEmail(cfg, request.Email, code); err != nil {
		log.Printf("Failed to send reset email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
}

func VerifyForgotPassword(ctx *gin.Context) {
	var request structs.VerifyForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reset models.PasswordReset
	err := db.GetCollection("password_resets").FindOne(dbCtx, bson.M{"email": request.Email}).Decode(&reset)
	if err != nil || reset.Code != request.Code || time.Now().After(reset.ExpiresAt) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired reset code"})
		return
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm password reset"})
		return
	}

	update := bson.M{"$set": bson.M{"passwordHash": hash}}
	if _, err := db.GetCollection("users").UpdateOne(dbCtx, bson.M{"email": request.Email}, update); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm password reset"})
		return
	}

	db.GetCollection("password_resets").DeleteOne(dbCtx, bson.M{"email": request.Email})

	ctx.JSON(http.StatusOK, gin.H{"message": "Password successfully changed"})
}
