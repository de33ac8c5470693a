package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CreateUserRequest struct {
	UserEmail     string `json:"user_email"`
	UserPassword  string `json:"user_password"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
	OrgUnitPath   string `json:"org_unit_path"`
}

type UserRequest struct {
	UserEmail string `json:"user_email"`
}

func registerUserRoutes(router *gin.Engine, deps *Deps) {
	router.POST("/api/users/create", createUserHandler(deps))
	router.POST("/api/users/delete", deleteUserHandler(deps))
	router.POST("/api/users/suspend", suspendUserHandler(deps))
}

func createUserHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := CreateUserRequest{}
		if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
			respondErr(c, missingParam("user_email"))
			return
		}

		required := []struct{ name, value string }{
			{"user_email", input.UserEmail},
			{"user_password", input.UserPassword},
			{"user_first_name", input.UserFirstName},
			{"user_last_name", input.UserLastName},
			{"org_unit_path", input.OrgUnitPath},
		}
		for _, field := range required {
			if field.value == "" {
				respondErr(c, missingParam(field.name))
				return
			}
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("create user", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) != nil {
			respondErr(c, opFailed("create user", fmt.Errorf("User %s already exists.", input.UserEmail)))
			return
		}

		if err := dir.CreateUser(c.Request.Context(), input.UserEmail, input.UserPassword,
			input.UserFirstName, input.UserLastName, input.OrgUnitPath); err != nil {
			respondErr(c, opFailed("create user", err))
			return
		}

		respondOK(c, "User created successfully.")
	}
}

func deleteUserHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := UserRequest{}
		if err := c.ShouldBindWith(&input, binding.JSON); err != nil || input.UserEmail == "" {
			respondErr(c, missingParam("user_email"))
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("delete user", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		if err := dir.DeleteUser(c.Request.Context(), input.UserEmail); err != nil {
			respondErr(c, opFailed("delete user", err))
			return
		}

		respondOK(c, "User deleted successfully.")
	}
}

func suspendUserHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := UserRequest{}
		if err := c.ShouldBindWith(&input, binding.JSON); err != nil || input.UserEmail == "" {
			respondErr(c, missingParam("user_email"))
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("suspend user", err))
			return
		}

		user := dir.GetUser(c.Request.Context(), input.UserEmail)
		if user == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		if user.Suspended {
			respondErr(c, opFailed("suspend user", fmt.Errorf("User %s is already suspended.", input.UserEmail)))
			return
		}

		if err := dir.SuspendUser(c.Request.Context(), input.UserEmail); err != nil {
			respondErr(c, opFailed("suspend user", err))
			return
		}

		respondOK(c, "User suspended successfully.")
	}
}
