package mockserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yonasBSD/solidtime/internal/contract"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/utils"
)

func (s *Server) handle(e *contract.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("alias", e.Alias)
		defer func() { s.metrics.Observe(e.Alias, c.Writer.Status()) }()

		req, err := readRequest(c, e)
		if err != nil {
			respondInvalid(c, err)
			return
		}

		responder, ok := s.responder(e.Alias)
		if !ok {
			utils.RespondMessage(c, http.StatusNotImplemented, fmt.Sprintf("No stub registered for %s.", e.Alias))
			return
		}
		s.reply(c, e, responder(req))
	}
}

func readRequest(c *gin.Context, e *contract.Endpoint) (*Request, error) {
	path := make(map[string]string)
	for _, name := range e.PathParams() {
		path[name] = c.Param(name)
	}
	if _, err := e.BuildPath(path); err != nil {
		return nil, err
	}
	query, err := e.ValidateQuery(c.Request.URL.Query())
	if err != nil {
		return nil, err
	}

	req := &Request{
		Alias:  e.Alias,
		Path:   path,
		Query:  query,
		Header: c.Request.Header.Clone(),
	}
	if !e.HasBody() {
		return req, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, appErrors.NewValidationError(appErrors.TargetBody, "", "cannot read request body")
	}
	if _, err := e.ValidateBody(json.RawMessage(raw)); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &req.Body); err != nil {
		return nil, appErrors.NewValidationError(appErrors.TargetBody, "", "request body is not valid JSON")
	}
	return req, nil
}

// reply checks success bodies against the response schema so that a broken
// stub fails loudly instead of reaching the client.
func (s *Server) reply(c *gin.Context, e *contract.Endpoint, r Reply) {
	status := r.status()
	if status < 200 || status > 299 {
		utils.RespondData(c, status, r.Body)
		return
	}
	raw, err := json.Marshal(r.Body)
	if err != nil {
		utils.RespondMessage(c, http.StatusInternalServerError, "stub body cannot be encoded: "+err.Error())
		return
	}
	if _, err := e.ValidateResponse(raw); err != nil {
		s.log.WithField("alias", e.Alias).WithError(err).Error("stub response does not match its schema")
		utils.RespondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.Data(status, "application/json", raw)
}

// respondInvalid answers 422 in the shape Laravel uses for failed validation.
func respondInvalid(c *gin.Context, err error) {
	var v *appErrors.ValidationError
	if !errors.As(err, &v) || len(v.Issues) == 0 {
		utils.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	fields := make(map[string][]string)
	for _, issue := range v.Issues {
		field := issue.Field
		if field == "" {
			field = v.Target
		}
		fields[field] = append(fields[field], issue.Message)
	}
	utils.RespondValidation(c, summary(v.Issues), fields)
}

func summary(issues []appErrors.Issue) string {
	msg := issues[0].Message
	switch more := len(issues) - 1; more {
	case 0:
		return msg
	case 1:
		return msg + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", msg, more)
	}
}
