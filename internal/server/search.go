package server

import (
	"net/http"
	"strings"

	"github.com/callcenterinsight/insights/internal/search"
	"github.com/gin-gonic/gin"
)

// The search handlers are a thin proxy: payloads pass through the client
// untouched and upstream failures surface as 502/503.

func (s *Server) SearchHealth(c *gin.Context) {
	status, err := s.searchCli.Health(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", status)
}

func (s *Server) ListSearchCollections(c *gin.Context) {
	collections, err := s.searchCli.ListCollections(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if collections == nil {
		collections = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (s *Server) GetSearchCollectionInfo(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	info, err := s.searchCli.GetCollectionInfo(c.Request.Context(), name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) SearchDocuments(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var req search.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.Vector) == 0 {
		AbortWithError(c, newValidationError("vector", "invalid_vector", "query vector is required"))
		return
	}

	resp, err := s.searchCli.Search(c.Request.Context(), name, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) TextSearchDocuments(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var req search.TextSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		AbortWithError(c, newValidationError("query", "invalid_query", "query text is required"))
		return
	}
	if req.Limit != nil && (*req.Limit < 1 || *req.Limit > 1000) {
		AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be between 1 and 1000"))
		return
	}
	if req.ScoreThreshold != nil && (*req.ScoreThreshold < 0 || *req.ScoreThreshold > 1) {
		AbortWithError(c, newValidationError("score_threshold", "invalid_score_threshold", "score_threshold must be between 0 and 1"))
		return
	}

	resp, err := s.searchCli.TextSearch(c.Request.Context(), name, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) RecommendDocuments(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var req search.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.PositiveIDs) == 0 {
		AbortWithError(c, newValidationError("positive_ids", "invalid_positive_ids", "at least one positive id is required"))
		return
	}

	resp, err := s.searchCli.Recommend(c.Request.Context(), name, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) BatchSearchDocuments(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var req search.BatchSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.Queries) == 0 || len(req.Queries) > 10 {
		AbortWithError(c, newValidationError("queries", "invalid_queries", "between 1 and 10 queries are required"))
		return
	}

	resp, err := s.searchCli.BatchSearch(c.Request.Context(), name, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
