package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/octareno/contacts-api/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request prepares a resty request with the JSON content type and, when a
// session token is stored, the raw "Authorization" header the server expects.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}

	return req
}

// decodeData unmarshals the {"data": ...} success envelope into out.
func decodeData(resp *resty.Response, out any) error {
	envelope := models.DataResponse{Data: out}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var token models.TokenResponse
	if err = decodeData(resp, &token); err != nil {
		return "", err
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.request(ctx).Get("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Patch("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp, &contact); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (h *httpAPIClient) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	resp, err := h.request(ctx).Get(contactPath(contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp, &contact); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (h *httpAPIClient) UpdateContact(ctx context.Context, contactID int64, req models.ContactRequest) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Put(contactPath(contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp, &contact); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (h *httpAPIClient) DeleteContact(ctx context.Context, contactID int64) error {
	resp, err := h.request(ctx).Delete(contactPath(contactID))
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) SearchContacts(ctx context.Context, req models.SearchContactsRequest) (models.SearchResponse, error) {
	r := h.request(ctx)

	if req.Name != "" {
		r.SetQueryParam("name", req.Name)
	}
	if req.Email != "" {
		r.SetQueryParam("email", req.Email)
	}
	if req.Phone != "" {
		r.SetQueryParam("phone", req.Phone)
	}
	if req.Page > 0 {
		r.SetQueryParam("page", strconv.Itoa(req.Page))
	}
	if req.Size > 0 {
		r.SetQueryParam("size", strconv.Itoa(req.Size))
	}

	resp, err := r.Get("/api/contacts")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var result models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode response body: %w", err)
	}

	return result, nil
}

func (h *httpAPIClient) CreateAddress(ctx context.Context, contactID int64, req models.AddressRequest) (models.Address, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post(addressesPath(contactID))
	if err != nil {
		return models.Address{}, fmt.Errorf("create address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp, &address); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

func (h *httpAPIClient) GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	resp, err := h.request(ctx).Get(addressPath(contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("get address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp, &address); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

func (h *httpAPIClient) UpdateAddress(ctx context.Context, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Put(addressPath(contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("update address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp, &address); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

func (h *httpAPIClient) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	resp, err := h.request(ctx).Delete(addressPath(contactID, addressID))
	if err != nil {
		return fmt.Errorf("delete address request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	resp, err := h.request(ctx).Get(addressesPath(contactID))
	if err != nil {
		return nil, fmt.Errorf("list addresses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err = decodeData(resp, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func contactPath(contactID int64) string {
	return fmt.Sprintf("/api/contacts/%d", contactID)
}

func addressesPath(contactID int64) string {
	return fmt.Sprintf("/api/contacts/%d/addresses", contactID)
}

func addressPath(contactID, addressID int64) string {
	return fmt.Sprintf("/api/contacts/%d/addresses/%d", contactID, addressID)
}
