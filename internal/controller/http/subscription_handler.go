package http

import (
	"net/http"

	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUseCase: subscriptionUseCase}
}

// Toggle godoc
// @Summary      Toggle a channel subscription
// @Description  Subscribing to your own channel is rejected
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		response.Fail(c, err)
		return
	}

	subscribed, err := h.subscriptionUseCase.Toggle(c.Request.Context(), principalID(c), channelID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	message := "unsubscribed"
	if subscribed {
		message = "subscribed"
	}
	response.OK(c, http.StatusOK, gin.H{"subscribed": subscribed}, message)
}

// Subscribers godoc
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Param        channelId path string true "Channel id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		response.Fail(c, err)
		return
	}
	page, limit := parsePagination(c)

	subscribers, err := h.subscriptionUseCase.ListSubscribers(c.Request.Context(), channelID, page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, subscribers, "subscribers fetched successfully")
}

// SubscribedChannels godoc
// @Summary      List channels the user is subscribed to
// @Tags         subscriptions
// @Produce      json
// @Param        subscriberId path string true "Subscriber id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	subscriberID, err := pathID(c, "subscriberId")
	if err != nil {
		response.Fail(c, err)
		return
	}
	page, limit := parsePagination(c)

	channels, err := h.subscriptionUseCase.ListSubscribed(c.Request.Context(), subscriberID, page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, channels, "subscribed channels fetched successfully")
}
