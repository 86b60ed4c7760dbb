package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scamaware/jersey/content"
	"github.com/scamaware/jersey/pkg/email"
	"github.com/scamaware/jersey/pkg/formkit"
	"github.com/scamaware/jersey/pkg/sanitizer"
)

// Loose by intent: residents paste numbers with spaces and punctuation.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

type reportHandler struct {
	log       *slog.Logger
	store     *content.Store
	mailer    email.Sender
	recipient string
}

// reportInput is the submitted form; both JSON and urlencoded bodies bind
// to the same field names.
type reportInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ScamType string `json:"scam_type"`
	Message  string `json:"message"`
}

func (h reportHandler) submit(w http.ResponseWriter, r *http.Request) {
	input, err := h.bind(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "Could not read the submitted form")
		return
	}

	form := h.buildForm(input)

	reportID := uuid.NewString()
	var sendErr error
	submitted := form.Submit(func(values map[string]string) {
		sendErr = h.notify(r, reportID, values)
	})

	if !submitted {
		respondFieldErrors(w, form.Errors())
		return
	}
	if sendErr != nil {
		h.log.ErrorContext(r.Context(), "scam report notification failed",
			slog.String("report_id", reportID),
			slog.Any("error", sendErr),
		)
		respondError(w, http.StatusInternalServerError, "report_failed", "We could not record your report, please try again")
		return
	}

	h.log.InfoContext(r.Context(), "scam report received",
		slog.String("report_id", reportID),
		slog.String("scam_type", input.ScamType),
	)
	respondData(w, http.StatusAccepted, map[string]string{"report_id": reportID})
}

func (h reportHandler) bind(r *http.Request) (reportInput, error) {
	var input reportInput

	mediaType := r.Header.Get("Content-Type")
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return input, err
		}
		input.Name = r.PostFormValue("name")
		input.Email = r.PostFormValue("email")
		input.Phone = r.PostFormValue("phone")
		input.ScamType = r.PostFormValue("scam_type")
		input.Message = r.PostFormValue("message")
	}

	input.Name = sanitizer.Apply(input.Name,
		sanitizer.StripControlChars, sanitizer.SingleLine, sanitizer.Trim)
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Phone = sanitizer.Apply(input.Phone, sanitizer.SingleLine, sanitizer.Trim)
	input.ScamType = sanitizer.Apply(input.ScamType, sanitizer.SingleLine, sanitizer.Trim)
	input.Message = sanitizer.Apply(input.Message, sanitizer.StripControlChars, sanitizer.Trim)

	return input, nil
}

func (h reportHandler) buildForm(input reportInput) *formkit.Form {
	form := formkit.New()

	form.Register("name", &formkit.RuleSet{
		Required:  true,
		MaxLength: &formkit.LengthRule{Threshold: 200, Message: "Name must be 200 characters or fewer"},
	})
	form.Register("email", &formkit.RuleSet{Required: true, Email: true})
	form.Register("phone", &formkit.RuleSet{
		Pattern: &formkit.PatternRule{Expr: phonePattern, Message: "Please enter a valid phone number"},
	})
	form.Register("scam_type", &formkit.RuleSet{Custom: h.knownScamType})
	form.Register("message", &formkit.RuleSet{
		Required:        true,
		RequiredMessage: "Please tell us what happened",
		MinLength:       &formkit.LengthRule{Threshold: 10, Message: "Please give us a little more detail"},
		MaxLength:       &formkit.LengthRule{Threshold: 5000, Message: "Message must be 5000 characters or fewer"},
	})

	form.SetValue("name", input.Name)
	form.SetValue("email", input.Email)
	form.SetValue("phone", input.Phone)
	form.SetValue("scam_type", input.ScamType)
	form.SetValue("message", input.Message)

	return form
}

// knownScamType accepts an empty selection or any published category slug.
func (h reportHandler) knownScamType(value string) string {
	if value == "" {
		return ""
	}
	if _, err := h.store.Category(value); err != nil {
		return "Please choose a scam type from the list"
	}
	return ""
}

func (h reportHandler) notify(r *http.Request, reportID string, values map[string]string) error {
	scamType := values["scam_type"]
	if scamType == "" {
		scamType = "not specified"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Report ID: %s\n", reportID)
	fmt.Fprintf(&body, "Received:  %s\n\n", content.FormatDate(time.Now()))
	fmt.Fprintf(&body, "Name:      %s\n", values["name"])
	fmt.Fprintf(&body, "Email:     %s\n", values["email"])
	if values["phone"] != "" {
		fmt.Fprintf(&body, "Phone:     %s\n", values["phone"])
	}
	fmt.Fprintf(&body, "Scam type: %s\n\n", scamType)
	fmt.Fprintf(&body, "What happened:\n%s\n", values["message"])

	return h.mailer.Send(r.Context(), email.Message{
		To:       h.recipient,
		Subject:  "New scam report: " + scamType,
		BodyText: body.String(),
		Tag:      "scam-report",
	})
}
