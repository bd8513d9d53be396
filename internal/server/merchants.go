package server

import (
	"net/http"
	"strconv"
	"strings"

	merchantdomain "github.com/callcenterinsight/insights/internal/merchant/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetMerchantComplete(c *gin.Context) {
	merchantID, err := strconv.ParseInt(strings.TrimSpace(c.Param("merchant_id")), 10, 64)
	if err != nil {
		AbortWithError(c, merchantdomain.ErrInvalidMerchantID)
		return
	}

	resp, err := s.merchantSvc.GetComplete(c.Request.Context(), merchantdomain.GetCompleteRequest{
		MerchantID: merchantID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type merchantBatchRequest struct {
	MerchantIDs []int64 `json:"merchant_ids"`
}

func (s *Server) GetMerchantCompleteBatch(c *gin.Context) {
	var req merchantBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.merchantSvc.GetCompleteBatch(c.Request.Context(), merchantdomain.BatchCompleteRequest{
		MerchantIDs: req.MerchantIDs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMerchantsByIDs is the query-parameter variant of the batch lookup:
// GET /merchants/complete?merchant_ids=1&merchant_ids=2. It answers a bare
// array rather than the batch envelope.
func (s *Server) GetMerchantsByIDs(c *gin.Context) {
	raw := c.QueryArray("merchant_ids")

	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			AbortWithError(c, merchantdomain.ErrInvalidMerchantID)
			return
		}
		ids = append(ids, id)
	}

	resp, err := s.merchantSvc.GetCompleteBatch(c.Request.Context(), merchantdomain.BatchCompleteRequest{
		MerchantIDs: ids,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp.Merchants)
}

func (s *Server) GetMerchantByPhone(c *gin.Context) {
	phone := strings.TrimSpace(c.Param("phone"))

	resp, err := s.merchantSvc.GetByPhone(c.Request.Context(), merchantdomain.SearchByPhoneRequest{
		Phone: phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
