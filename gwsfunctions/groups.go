package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GroupRequest struct {
	UserEmail  string `json:"user_email"`
	GroupEmail string `json:"group_email"`
}

func registerGroupRoutes(router *gin.Engine, deps *Deps) {
	router.POST("/api/groups/add", addToGroupHandler(deps))
	router.POST("/api/groups/remove", removeFromGroupHandler(deps))
}

func bindGroupRequest(c *gin.Context) (GroupRequest, *opError) {
	input := GroupRequest{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		return input, missingParam("user_email")
	}
	if input.UserEmail == "" {
		return input, missingParam("user_email")
	}
	if input.GroupEmail == "" {
		return input, missingParam("group_email")
	}
	return input, nil
}

func addToGroupHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, opErr := bindGroupRequest(c)
		if opErr != nil {
			respondErr(c, opErr)
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("add user to group", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		if dir.GetGroup(c.Request.Context(), input.GroupEmail) == nil {
			respondErr(c, notFound("Group", input.GroupEmail))
			return
		}

		alreadyMember, err := isUserInGroup(c.Request.Context(), dir, input.UserEmail, input.GroupEmail)
		if err != nil {
			respondErr(c, opFailed("add user to group", err))
			return
		}
		if alreadyMember {
			respondOK(c, fmt.Sprintf("User, %s is already in group, %s.", input.UserEmail, input.GroupEmail))
			return
		}

		if err := dir.AddToGroup(c.Request.Context(), input.UserEmail, input.GroupEmail); err != nil {
			respondErr(c, opFailed("add user to group", err))
			return
		}

		respondOK(c, fmt.Sprintf("User added to group, %s successfully.", input.GroupEmail))
	}
}

func removeFromGroupHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, opErr := bindGroupRequest(c)
		if opErr != nil {
			respondErr(c, opErr)
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("remove user from group", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		if dir.GetGroup(c.Request.Context(), input.GroupEmail) == nil {
			respondErr(c, notFound("Group", input.GroupEmail))
			return
		}

		if err := dir.RemoveFromGroup(c.Request.Context(), input.UserEmail, input.GroupEmail); err != nil {
			respondErr(c, opFailed("remove user from group", err))
			return
		}

		respondOK(c, "User removed from group successfully.")
	}
}
