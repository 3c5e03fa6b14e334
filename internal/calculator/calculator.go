// Package calculator estimates earnings of bandwidth sharing apps.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/nosytlabs/nosytlabs-site/internal/content"
)

const (
	// MBPerDeviceHour is the bandwidth one device shares per active hour.
	MBPerDeviceHour = 12.0
	// MBPerGB converts megabytes to gigabytes.
	MBPerGB = 1024.0
	// USDPerGB is the default payout per shared gigabyte.
	USDPerGB = 0.15
	// ReferralShare is the part of a referral's bandwidth earnings paid as bonus.
	ReferralShare = 0.10

	DaysPerMonth = 30
	DaysPerYear  = 365

	// MaxHours is the upper bound for hours per day.
	MaxHours = 24
	// MaxCount caps parsed counts.
	MaxCount = 1_000_000
)

// Rates are the payout parameters of one app.
type Rates struct {
	MBPerDeviceHour float64 `json:"mbPerDeviceHour"`
	USDPerGB        float64 `json:"usdPerGb"`
	ReferralShare   float64 `json:"referralShare"`
}

// DefaultRates returns the rates used when an app does not override them.
func DefaultRates() Rates {
	return Rates{
		MBPerDeviceHour: MBPerDeviceHour,
		USDPerGB:        USDPerGB,
		ReferralShare:   ReferralShare,
	}
}

// RatesFor returns the default rates with the overrides of app applied.
func RatesFor(app content.PassiveIncomeApp) Rates {
	r := DefaultRates()

	if app.USDPerGB > 0 {
		r.USDPerGB = app.USDPerGB
	}

	if app.ReferralShare > 0 {
		r.ReferralShare = app.ReferralShare
	}

	return r
}

// Input holds the calculator fields.
type Input struct {
	Devices         int `json:"devices"`
	Hours           int `json:"hours"`
	Referrals       int `json:"referrals"`
	ReferralDevices int `json:"referralDevices"`
}

// Clamp bounds hours to [0, MaxHours] and every count to [0, MaxCount].
func (in Input) Clamp() Input {
	in.Devices = clamp(in.Devices, 0, MaxCount)
	in.Hours = clamp(in.Hours, 0, MaxHours)
	in.Referrals = clamp(in.Referrals, 0, MaxCount)
	in.ReferralDevices = clamp(in.ReferralDevices, 0, MaxCount)

	return in
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Estimate is the result of a calculation. Amounts are in USD.
type Estimate struct {
	Input Input `json:"input"`
	Rates Rates `json:"rates"`

	DailyGB        float64 `json:"dailyGb"`
	DailyBandwidth float64 `json:"dailyBandwidth"`
	DailyReferral  float64 `json:"dailyReferral"`
	Daily          float64 `json:"daily"`
	Monthly        float64 `json:"monthly"`
	Yearly         float64 `json:"yearly"`
}

// Calculate computes the estimate for in. Zero rate fields use the defaults.
func Calculate(in Input, rates Rates) Estimate {
	in = in.Clamp()
	rates = rates.withDefaults()

	gbPerDevice := float64(in.Hours) * rates.MBPerDeviceHour / MBPerGB

	e := Estimate{
		Input:   in,
		Rates:   rates,
		DailyGB: float64(in.Devices) * gbPerDevice,
	}

	e.DailyBandwidth = e.DailyGB * rates.USDPerGB
	e.DailyReferral = float64(in.Referrals*in.ReferralDevices) * gbPerDevice * rates.USDPerGB * rates.ReferralShare
	e.Daily = e.DailyBandwidth + e.DailyReferral
	e.Monthly = e.Daily * DaysPerMonth
	e.Yearly = e.Daily * DaysPerYear

	return e
}

func (r Rates) withDefaults() Rates {
	def := DefaultRates()

	if r.MBPerDeviceHour <= 0 {
		r.MBPerDeviceHour = def.MBPerDeviceHour
	}

	if r.USDPerGB <= 0 {
		r.USDPerGB = def.USDPerGB
	}

	if r.ReferralShare <= 0 {
		r.ReferralShare = def.ReferralShare
	}

	return r
}

// ParseCount reads the leading integer of s the way a browser form does:
// surrounding spaces and a sign are accepted, anything after the digits is
// ignored. When no digits lead the value, or the value is zero, def is returned.
func ParseCount(s string, def int) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of int range, keep the sign
		if s[0] == '-' {
			return -MaxCount
		}

		return MaxCount
	}

	if n == 0 {
		return def
	}

	return n
}

// ParseInput parses raw form values, falling back to def per field.
func ParseInput(devices, hours, referrals, referralDevices string, def Input) Input {
	return Input{
		Devices:         ParseCount(devices, def.Devices),
		Hours:           ParseCount(hours, def.Hours),
		Referrals:       ParseCount(referrals, def.Referrals),
		ReferralDevices: ParseCount(referralDevices, def.ReferralDevices),
	}.Clamp()
}

// FormatUSD renders an amount like "$1.23". Amounts under a cent keep
// four decimals so small daily figures do not show as zero.
func FormatUSD(v float64) string {
	if v != 0 && math.Abs(v) < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}

	return fmt.Sprintf("$%.2f", v)
}
