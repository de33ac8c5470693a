package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LeaverLists struct {
	GoogleWorkspace []string `json:"google_workspace_leavers"`
	AWS             []string `json:"aws_leavers"`
	GitHub          []string `json:"github_leavers"`
}

type AWSLeaverRequest struct {
	Username string `json:"username"`
}

const leaverDateLayout = "2006-01-02"

func registerLeaverRoutes(router *gin.Engine, deps *Deps) {
	router.POST("/api/leavers", getLeaversHandler(deps))
	router.POST("/api/leavers/aws", awsLeaverHandler(deps))
}

// extractLeavers partitions the schedule into the three downstream lists.
// The evaluation instant is taken once by the caller so a slow read cannot
// move the cutoff mid-pass. A row whose date does not parse aborts the
// whole extraction; a data-entry mistake should be loud, not skipped.
func extractLeavers(rows [][]string, now time.Time) (*LeaverLists, error) {
	lists := &LeaverLists{
		GoogleWorkspace: []string{},
		AWS:             []string{},
		GitHub:          []string{},
	}

	for i, row := range rows {
		if i == 0 {
			// header
			continue
		}

		if len(row) == 0 {
			return nil, fmt.Errorf("row %d is empty", i+1)
		}

		leaveDate, err := time.Parse(leaverDateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid leave date %q", i+1, row[0])
		}

		if !leaveDate.Before(now) {
			continue
		}

		if len(row) > 1 && row[1] != "" {
			lists.GoogleWorkspace = append(lists.GoogleWorkspace, row[1])
		}
		if len(row) > 2 && row[2] != "" {
			lists.AWS = append(lists.AWS, row[2])
		}
		if len(row) > 3 && row[3] != "" {
			lists.GitHub = append(lists.GitHub, row[3])
		}
	}

	return lists, nil
}

func getLeaversHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		source, err := deps.leavers(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("get leavers", err))
			return
		}

		rows, err := source.ReadLeaverRows(c.Request.Context())
		if err != nil {
			respondErr(c, opFailed("get leavers", err))
			return
		}

		lists, err := extractLeavers(rows, now)
		if err != nil {
			respondErr(c, opFailed("get leavers", err))
			return
		}

		InfoLog.Println("Google Workspace Leavers:", lists.GoogleWorkspace)
		InfoLog.Println("AWS Leavers:", lists.AWS)
		InfoLog.Println("GitHub Leavers:", lists.GitHub)

		c.JSON(http.StatusOK, lists)
	}
}

func awsLeaverHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := AWSLeaverRequest{}
		if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
			respondErr(c, missingParam("username"))
			return
		}
		if input.Username == "" {
			respondErr(c, missingParam("username"))
			return
		}

		body, err := deps.aws.DeprovisionUser(c.Request.Context(), input.Username)
		if err != nil {
			respondErr(c, opFailed("deprovision AWS user", err))
			return
		}

		InfoLog.Println("deprovisioned AWS user:", input.Username)

		c.Data(http.StatusOK, "application/json", body)
	}
}
