package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LicenseRequest struct {
	UserEmail  string `json:"user_email"`
	ProductID  string `json:"product_id"`
	LicenseSKU string `json:"license_sku"`
}

func registerLicenseRoutes(router *gin.Engine, deps *Deps) {
	router.POST("/api/licenses/assign", assignLicenseHandler(deps))
	router.POST("/api/licenses/unassign", unassignLicenseHandler(deps))
}

func bindLicenseRequest(c *gin.Context) (LicenseRequest, *opError) {
	input := LicenseRequest{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		return input, missingParam("user_email")
	}
	if input.UserEmail == "" {
		return input, missingParam("user_email")
	}
	if input.ProductID == "" {
		return input, missingParam("product_id")
	}
	if input.LicenseSKU == "" {
		return input, missingParam("license_sku")
	}
	return input, nil
}

func assignLicenseHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, opErr := bindLicenseRequest(c)
		if opErr != nil {
			respondErr(c, opErr)
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("assign license", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		lic, err := deps.licensing(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("assign license", err))
			return
		}

		if err := lic.AssignLicense(c.Request.Context(), input.ProductID, input.LicenseSKU, input.UserEmail); err != nil {
			respondErr(c, opFailed("assign license", err))
			return
		}

		respondOK(c, "License assigned successfully.")
	}
}

func unassignLicenseHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, opErr := bindLicenseRequest(c)
		if opErr != nil {
			respondErr(c, opErr)
			return
		}

		dir, err := deps.directory(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("unassign license", err))
			return
		}

		if dir.GetUser(c.Request.Context(), input.UserEmail) == nil {
			respondErr(c, notFound("User", input.UserEmail))
			return
		}

		lic, err := deps.licensing(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("unassign license", err))
			return
		}

		if err := lic.UnassignLicense(c.Request.Context(), input.ProductID, input.LicenseSKU, input.UserEmail); err != nil {
			respondErr(c, opFailed("unassign license", err))
			return
		}

		respondOK(c, "License unassigned successfully.")
	}
}
