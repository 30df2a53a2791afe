package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// localeStyle is how a family of locales writes dates and places the
// currency symbol.
type localeStyle struct {
	dateLayout   string
	symbolBefore bool
	// minGrouping is CLDR's minimumGroupingDigits: pt-PT and es leave
	// four-digit integers ungrouped.
	minGrouping int
}

// supportedLocales and localeStyles are parallel; index 0 is the fallback.
var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.EuropeanPortuguese,
		language.BrazilianPortuguese,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
		language.Japanese,
	}
	localeStyles = []localeStyle{
		{dateLayout: "01/02/2006", symbolBefore: true},
		{dateLayout: "02/01/2006", symbolBefore: true},
		{dateLayout: "02/01/2006", minGrouping: 2},
		{dateLayout: "02/01/2006"},
		{dateLayout: "02.01.2006"},
		{dateLayout: "02/01/2006"},
		{dateLayout: "02/01/2006", minGrouping: 2},
		{dateLayout: "02/01/2006"},
		{dateLayout: "2006/01/02", symbolBefore: true},
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

// Formatter renders amounts and dates for one account's locale and currency.
type Formatter struct {
	tag      language.Tag
	style    localeStyle
	currency *money.Currency
	printer  *message.Printer
	group    string
	decimal  string
}

// NewFormatter fails on a malformed locale tag or an unknown ISO 4217 code.
// Locales outside the supported set fall back to the closest match.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", currencyCode)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}

	f := &Formatter{
		tag:      tag,
		style:    localeStyles[idx],
		currency: cur,
		printer:  message.NewPrinter(tag),
	}
	f.group, f.decimal = separators(f.printer)
	return f, nil
}

// separators reads the CLDR grouping and decimal symbols by printing a
// sample number through p.
func separators(p *message.Printer) (group, decimal string) {
	sample := []rune(p.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	var marks []string
	for i := 0; i < len(sample); {
		if unicode.IsDigit(sample[i]) {
			i++
			continue
		}
		j := i
		for j < len(sample) && !unicode.IsDigit(sample[j]) {
			j++
		}
		marks = append(marks, string(sample[i:j]))
		i = j
	}
	switch len(marks) {
	case 0:
		return "", "."
	case 1:
		return "", marks[0]
	default:
		return marks[0], marks[len(marks)-1]
	}
}

// groupDigits inserts sep every three digits from the right, unless the
// integer has fewer than 3+minGrouping digits.
func groupDigits(digits, sep string, minGrouping int) string {
	if minGrouping < 1 {
		minGrouping = 1
	}
	if sep == "" || len(digits) < 3+minGrouping {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatCurrency writes amount with two decimals, the locale's separators and
// the currency symbol, e.g. "$1,234.50" or "1.234,50 €".
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	intPart, fracPart, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	digits := groupDigits(intPart, f.group, f.style.minGrouping) + f.decimal + fracPart

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	if f.style.symbolBefore {
		return sign + f.currency.Grapheme + digits
	}
	return sign + digits + " " + f.currency.Grapheme
}

// FormatDate writes the absolute calendar date in the locale's numeric layout.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.style.dateLayout)
}

// FormatMovementDate labels a movement relative to now: "Today",
// "Yesterday", "N Days Ago" up to a week, otherwise the absolute date.
// Days are counted between calendar dates in now's location, so a movement
// at 23:59 yesterday is "Yesterday" even if it is only minutes old.
func (f *Formatter) FormatMovementDate(date, now time.Time) string {
	days := calendarDaysBetween(date.In(now.Location()), now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days >= 2 && days <= 7:
		return fmt.Sprintf("%d Days Ago", days)
	default:
		return f.FormatDate(date.In(now.Location()))
	}
}

// FormatNow renders the current-date label: the date followed by HH:MM.
func (f *Formatter) FormatNow(now time.Time) string {
	return now.Format(f.style.dateLayout + ", 15:04")
}

// calendarDaysBetween returns how many calendar days from precedes to.
// Both are read in their own location; the result is negative when from is later.
func calendarDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
