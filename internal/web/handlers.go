package web

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/sessions"

	"github.com/crashlar/quotesforever/internal/config"
	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/errors"
	"github.com/crashlar/quotesforever/internal/ops"
	"github.com/crashlar/quotesforever/internal/quote"
)

// categories offered by the add-quote form.
var categories = []string{
	"Motivation", "Life", "Love", "Success", "Career", "Dreams",
	"Perseverance", "Courage", "Opportunity", "Happiness", "Wisdom",
	"Innovation", "Inspiration",
}

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	renderer *Renderer
	sessions *sessions.CookieStore
	logger   *log.Logger
}

// HandleHome handles GET / — the quote-of-the-day page. The currently
// shown quote is pinned in the session so that redisplaying the page does
// not re-roll; only an explicit "new quote" request draws again.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.Values[sessionKeyPage] = "home"

	var q *quote.Quote
	if id, ok := currentQuoteID(sess); ok {
		got, err := db.GetQuoteByID(r.Context(), h.db, id)
		if err == nil {
			q = got
		} else if !errors.Is(err, errors.ErrNotFound) {
			h.renderer.renderError(w, r, err)
			return
		}
	}

	if q == nil {
		out, err := ops.Random(r.Context(), h.db)
		if errors.Is(err, errors.ErrNotFound) {
			// Store not seeded yet.
			_ = sess.Save(r, w)
			h.renderer.renderPage(w, "home", HomePageData{
				PageData: h.pageData("Quote of the Day", "home", nil),
				Empty:    true,
			})
			return
		}
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		q = out.Quote
		sess.Values[sessionKeyQuoteID] = q.ID
	}

	if err := sess.Save(r, w); err != nil {
		h.logger.Error("session save failed", "err", err)
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, ops.RandomOutput{Quote: q})
		return
	}

	var inspiration string
	if q.Inspiration != nil {
		inspiration = *q.Inspiration
	}

	h.renderer.renderPage(w, "home", HomePageData{
		PageData:        h.pageData("Quote of the Day", "home", sess),
		Quote:           q,
		InspirationHTML: renderMarkdown(inspiration),
	})
}

// HandleNewQuote handles POST /quotes/new — an explicit re-roll. Each call
// is an independent uniform draw over the full quotes table.
func (h *Handlers) HandleNewQuote(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Random(r.Context(), h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	sess := h.session(r)
	sess.Values[sessionKeyQuoteID] = out.Quote.ID
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("session save failed", "err", err)
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, out)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleAddQuoteForm handles GET /quotes/add — the add-quote form.
func (h *Handlers) HandleAddQuoteForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.Values[sessionKeyPage] = "add"
	data := AddPageData{
		PageData:   h.pageData("Add New Quote", "add", sess),
		Categories: categories,
	}
	_ = sess.Save(r, w)
	h.renderer.renderPage(w, "add", data)
}

// HandleAddQuote handles POST /quotes/add — validate and insert one quote.
func (h *Handlers) HandleAddQuote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	input := ops.AddQuoteInput{
		Text:        r.FormValue("quote_text"),
		Author:      r.FormValue("author"),
		Category:    r.FormValue("category"),
		Inspiration: ptrString(r.FormValue("inspiration")),
	}

	out, err := ops.AddQuote(r.Context(), h.db, input)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) && !wantsJSON(r) {
			h.renderer.renderPageStatus(w, http.StatusUnprocessableEntity, "add", AddPageData{
				PageData:   h.pageData("Add New Quote", "add", nil),
				Categories: categories,
				Error:      err.Error(),
				Text:       input.Text,
				Author:     input.Author,
				Category:   input.Category,
				Context:    r.FormValue("inspiration"),
			})
			return
		}
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusCreated, out)
		return
	}

	sess := h.session(r)
	sess.AddFlash("Quote added successfully to the database!")
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("session save failed", "err", err)
	}
	http.Redirect(w, r, "/quotes/add", http.StatusSeeOther)
}

// HandleProfileForm handles GET /profile — the personal-details form.
func (h *Handlers) HandleProfileForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.Values[sessionKeyPage] = "profile"
	data := ProfilePageData{
		PageData: h.pageData("Your Personal Details", "profile", sess),
	}
	_ = sess.Save(r, w)
	h.renderer.renderPage(w, "profile", data)
}

// HandleProfile handles POST /profile — validate and insert one profile row.
func (h *Handlers) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	input := ops.AddProfileInput{
		Name:        r.FormValue("name"),
		Phone:       ptrString(r.FormValue("phone")),
		Email:       r.FormValue("email"),
		Profession:  ptrString(r.FormValue("profession")),
		Feedback:    ptrString(r.FormValue("feedback")),
		HelpRequest: ptrString(r.FormValue("help_request")),
	}

	out, err := ops.AddProfile(r.Context(), h.db, input)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) && !wantsJSON(r) {
			h.renderer.renderPageStatus(w, http.StatusUnprocessableEntity, "profile", ProfilePageData{
				PageData: h.pageData("Your Personal Details", "profile", nil),
				Error:    err.Error(),
			})
			return
		}
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusCreated, out)
		return
	}

	sess := h.session(r)
	sess.AddFlash("Your details have been saved successfully! Thank you for sharing.")
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("session save failed", "err", err)
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// HandleMoodForm handles GET /mood — the mood profile form.
func (h *Handlers) HandleMoodForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.Values[sessionKeyPage] = "mood"
	data := MoodPageData{
		PageData: h.pageData("Get Quotes Based on Your Mood", "mood", sess),
		Moods:    quote.Moods,
		Age:      25,
	}
	_ = sess.Save(r, w)
	h.renderer.renderPage(w, "mood", data)
}

// HandleMood handles POST /mood — run the mood match and render either the
// matched quote or the substitute with its "no exact match" notice.
func (h *Handlers) HandleMood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("age must be an integer"))
		return
	}

	input := ops.MoodInput{
		Mood:             r.FormValue("mood"),
		Gender:           r.FormValue("gender"),
		Age:              age,
		SocialLife:       r.FormValue("social_life"),
		ProfessionalLife: r.FormValue("professional_life"),
	}

	out, err := ops.Mood(r.Context(), h.db, input)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) && !wantsJSON(r) {
			h.renderer.renderPageStatus(w, http.StatusUnprocessableEntity, "mood", MoodPageData{
				PageData: h.pageData("Get Quotes Based on Your Mood", "mood", nil),
				Moods:    quote.Moods,
				Error:    err.Error(),
				Age:      age,
			})
			return
		}
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, out)
		return
	}

	h.renderer.renderPage(w, "mood", MoodPageData{
		PageData:   h.pageData("Get Quotes Based on Your Mood", "mood", nil),
		Moods:      quote.Moods,
		Submitted:  true,
		Matched:    out.Matched,
		MoodQuote:  out.MoodQuote,
		Substitute: out.Substitute,
		Mood:       quote.NormalizeMood(input.Mood),
		Age:        age,
		SocialLife: quote.NormalizeLife(input.SocialLife),
		ProfLife:   quote.NormalizeLife(input.ProfessionalLife),
	})
}

// pageData assembles the common template fields, draining any pending
// flash messages when a session is supplied.
func (h *Handlers) pageData(title, nav string, sess *sessions.Session) PageData {
	data := PageData{
		Title:   title,
		Version: h.renderer.version,
		Nav:     nav,
	}
	if sess != nil {
		data.Flashes = flashes(sess)
	}
	return data
}

// ptrString returns a pointer to s if non-empty, nil otherwise.
func ptrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
