package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go-booking-assistant/internal/model"
)

// extractionWindow bounds how far back in the transcript extraction looks.
const extractionWindow = 10

// ExtractionService infers a best-effort BookingIntent from a conversation
// transcript. Once a category keyword is found it never fails: unextractable
// fields get documented defaults, trading precision for availability.
type ExtractionService interface {
	Extract(transcript []model.TranscriptEntry) *model.BookingIntent
}

type ExtractionServiceImpl struct {
	now func() time.Time
}

func NewExtractionService() ExtractionService {
	return &ExtractionServiceImpl{now: time.Now}
}

// NewExtractionServiceWithClock fixes the wall clock used for the time
// default, so extraction over a frozen transcript is reproducible.
func NewExtractionServiceWithClock(now func() time.Time) ExtractionService {
	return &ExtractionServiceImpl{now: now}
}

// fieldMatcher is one extraction strategy. Strategies for a field are
// evaluated in fixed priority order; the first success wins.
type fieldMatcher interface {
	match(text string) (string, bool)
}

// patternMatcher pulls the first capture group of a regular expression and
// strips filler words from it.
type patternMatcher struct {
	re *regexp.Regexp
}

var fillerWords = regexp.MustCompile(`\b(movie|event|ticket|for|watching|travel|to)\b`)

func (m patternMatcher) match(text string) (string, bool) {
	groups := m.re.FindStringSubmatch(text)
	if groups == nil {
		return "", false
	}
	cleaned := fillerWords.ReplaceAllString(groups[1], "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// captureMatcher pulls the first capture group verbatim.
type captureMatcher struct {
	re *regexp.Regexp
}

func (m captureMatcher) match(text string) (string, bool) {
	groups := m.re.FindStringSubmatch(text)
	if groups == nil {
		return "", false
	}
	return strings.TrimSpace(groups[1]), true
}

// keywordMatcher returns the first vocabulary word the text contains.
type keywordMatcher struct {
	keywords []string
}

func (m keywordMatcher) match(text string) (string, bool) {
	for _, kw := range m.keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}

var nameMatchers = map[model.Category][]fieldMatcher{
	model.CategoryMovie: {
		patternMatcher{regexp.MustCompile(`movie\s*(?:is)?\s*(.+?)(?:\s*at|\s*on|\s*$)`)},
		patternMatcher{regexp.MustCompile(`(?:for|watching)\s*(.+?)(?:\s*movie|ticket|\s*at|\s*on|\s*$)`)},
		patternMatcher{regexp.MustCompile(`(.+?)\s*movie\s*ticket`)},
	},
	model.CategoryEvent: {
		patternMatcher{regexp.MustCompile(`event\s*(?:is)?\s*(.+?)(?:\s*at|\s*on|\s*$)`)},
		patternMatcher{regexp.MustCompile(`(?:for)\s*(.+?)(?:\s*event|ticket|\s*at|\s*on|\s*$)`)},
		patternMatcher{regexp.MustCompile(`(.+?)\s*event\s*ticket`)},
	},
	model.CategoryTravel: {
		patternMatcher{regexp.MustCompile(`(?:to|destination)\s*(.+?)(?:\s*at|\s*on|\s*$)`)},
		patternMatcher{regexp.MustCompile(`(.+?)\s*travel\s*ticket`)},
	},
}

var (
	destinationMatcher = captureMatcher{regexp.MustCompile(`(?:to|destination)\s*(.+?)(?:\s*at|\s*on|\s*$)`)}
	timeMatcher        = captureMatcher{regexp.MustCompile(`(?:at)\s*(\d{1,2}:\d{2}\s*(?:am|pm)?)`)}
	priceMatcher       = captureMatcher{regexp.MustCompile(`(?:price|cost)\s*(?:is)?\s*(\$?\d+(?:\.\d{1,2})?)`)}
)

func (s *ExtractionServiceImpl) Extract(transcript []model.TranscriptEntry) *model.BookingIntent {
	window := transcript
	if len(window) > extractionWindow {
		window = window[len(window)-extractionWindow:]
	}

	category, ok := detectCategory(window)
	if !ok {
		return nil
	}

	intent := &model.BookingIntent{
		Category:    category,
		TicketCount: 1,
	}

	seatMatcher := keywordMatcher{keywords: category.Profile().SeatVocabulary}

	for _, entry := range window {
		if !entry.IsUser {
			continue
		}
		text := strings.ToLower(entry.Text)

		if intent.Name == "" {
			intent.Name = firstMatch(nameMatchers[category], text)
		}
		if category == model.CategoryTravel && intent.Destination == "" {
			if dest, ok := destinationMatcher.match(text); ok {
				intent.Destination = dest
			}
		}
		if intent.Time == "" {
			if t, ok := timeMatcher.match(text); ok {
				intent.Time = t
			}
		}
		if intent.SeatClass == "" {
			if seat, ok := seatMatcher.match(text); ok {
				intent.SeatClass = seat
			}
		}
		if intent.Price == "" {
			if price, ok := priceMatcher.match(text); ok {
				if !strings.HasPrefix(price, "$") {
					price = "$" + price
				}
				intent.Price = price
			}
		}
	}

	s.applyDefaults(intent)
	intent.SeatNumbers = seatNumbers(intent.TicketCount)
	return intent
}

// detectCategory scans newest-to-oldest for the first category keyword.
func detectCategory(window []model.TranscriptEntry) (model.Category, bool) {
	for i := len(window) - 1; i >= 0; i-- {
		text := strings.ToLower(window[i].Text)
		for _, category := range model.Categories() {
			if strings.Contains(text, string(category)) {
				return category, true
			}
		}
	}
	return "", false
}

func firstMatch(matchers []fieldMatcher, text string) string {
	for _, m := range matchers {
		if value, ok := m.match(text); ok {
			return value
		}
	}
	return ""
}

func (s *ExtractionServiceImpl) applyDefaults(intent *model.BookingIntent) {
	if intent.Name == "" {
		if intent.Category == model.CategoryTravel {
			intent.Name = "Unspecified Destination"
		} else {
			intent.Name = fmt.Sprintf("Unnamed %s%s",
				strings.ToUpper(string(intent.Category)[:1]), string(intent.Category)[1:])
		}
	}
	if intent.Time == "" {
		intent.Time = s.now().Format("3:04:05 PM")
	}
	if intent.SeatClass == "" {
		intent.SeatClass = "standard"
	}
	if intent.Price == "" {
		intent.Price = "$50.00"
	}
}

// seatNumbers assigns row letters in blocks of 4 starting at A1.
func seatNumbers(count int) []string {
	rows := "ABCDEFGH"
	seats := make([]string, 0, count)
	for i := 0; i < count; i++ {
		row := rows[(i/4)%len(rows)]
		seats = append(seats, fmt.Sprintf("%c%d", row, i%4+1))
	}
	return seats
}
