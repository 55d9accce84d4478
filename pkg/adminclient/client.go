// Package adminclient is a typed client for the hituru admin API.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hituru/admin-backend/internal/common"
)

// DefaultTimeout applies when RequestContext.Timeout is zero
const DefaultTimeout = 10 * time.Second

// Wire envelopes shared with the server
type (
	Result     = common.Result
	ItemResult = common.ItemResult
	BulkResult = common.BulkResult
	Pagination = common.Pagination
)

// Page is one page of a list endpoint
type Page[T any] = common.ListResponse[T]

// RequestContext carries everything a call needs. It is built once by the caller
// and never read from process-wide state.
type RequestContext struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
}

// APIError is a non-2xx answer from a read endpoint
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("admin api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client calls the admin API with one RequestContext
type Client struct {
	http *http.Client
	rc   RequestContext

	Members       *Members
	GeneralPosts  *List[GeneralPost, GeneralPostDetail]
	Notices       *List[Notice, NoticeDetail]
	Frauds        *List[FraudReport, FraudReportDetail]
	LimitedSales  *List[LimitedSale, LimitedSaleDetail]
	Comments      *Comments
	BoardReports  *List[BoardReport, BoardReport]
	MemberReports *List[MemberReport, MemberReport]
	QnA           *QnA
	Analysis      *Analysis
}

// New creates a Client. BaseURL is required.
func New(rc RequestContext) (*Client, error) {
	if rc.BaseURL == "" {
		return nil, errors.New("adminclient: base url is required")
	}
	rc.BaseURL = strings.TrimRight(rc.BaseURL, "/")
	if rc.Timeout <= 0 {
		rc.Timeout = DefaultTimeout
	}
	hc := rc.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	c := &Client{http: hc, rc: rc}
	c.Members = &Members{
		List: newList[MemberListItem, MemberDetail](c, paths{
			list: "/members", detail: "/members/detail", search: "/members/search", remove: "/users/delete",
		}),
		c: c,
	}
	c.GeneralPosts = newList[GeneralPost, GeneralPostDetail](c, boardPaths("/postmanage/general"))
	c.Notices = newList[Notice, NoticeDetail](c, boardPaths("/postmanage/notice"))
	c.Frauds = newList[FraudReport, FraudReportDetail](c, boardPaths("/postmanage/fraud"))
	c.LimitedSales = newList[LimitedSale, LimitedSaleDetail](c, paths{
		list: "/limitedsales/list", detail: "/limitedsales/detail", search: "/limitedsales/search", remove: "/limitedsales/delete",
	})
	c.Comments = &Comments{
		List: newList[Comment, Comment](c, paths{
			list:   "/postmanage/general/comment/list",
			search: "/postmanage/general/comment/search",
			remove: "/postmanage/general/comment/delete",
		}),
		c: c,
	}
	c.BoardReports = newList[BoardReport, BoardReport](c, boardPaths("/reports/board"))
	c.MemberReports = newList[MemberReport, MemberReport](c, boardPaths("/reports/member"))
	c.QnA = &QnA{List: newList[QnAItem, QnADetail](c, boardPaths("/memberqna")), c: c}
	c.Analysis = &Analysis{c: c}
	return c, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.rc.BaseURL+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.rc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.rc.Token)
	}
	return req, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, c.rc.Timeout)
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("admin api %s %s: %w", method, path, err)
	}
	return resp, cancel, nil
}

// get decodes a read endpoint into out; non-2xx answers become *APIError
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, cancel, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("admin api GET %s: decode: %w", path, err)
	}
	return nil
}

// mutate posts to a mutation endpoint. The envelope is decoded whatever the status;
// only transport and decode failures are errors.
func (c *Client) mutate(ctx context.Context, path string, body, out interface{}) error {
	resp, cancel, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("admin api POST %s: read: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// the admin check answers {message} without an envelope
		if resp.StatusCode >= 400 {
			return decodeAPIErrorBody(resp.StatusCode, raw)
		}
		return fmt.Errorf("admin api POST %s: decode: %w", path, err)
	}
	if r, ok := out.(*Result); ok && r.Code == "" && resp.StatusCode >= 400 {
		return decodeAPIErrorBody(resp.StatusCode, raw)
	}
	if r, ok := out.(*BulkResult); ok && r.Code == "" && resp.StatusCode >= 400 {
		return decodeAPIErrorBody(resp.StatusCode, raw)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return decodeAPIErrorBody(resp.StatusCode, raw)
}

func decodeAPIErrorBody(status int, raw []byte) error {
	var body struct {
		Error   *common.ErrorInfo `json:"error"`
		Message string            `json:"message"`
	}
	apiErr := &APIError{Status: status, Code: http.StatusText(status)}
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Error != nil:
			apiErr.Code = body.Error.Code
			apiErr.Message = body.Error.Message
		case body.Message != "":
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
