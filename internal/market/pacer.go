package market

import (
	"time"

	"marketscan/internal/config"
)

// Pacer spaces requests so the market does not throttle the caller. The
// market penalizes burst traffic, so every delay here is mandatory. Used by
// a single control thread only.
type Pacer struct {
	successDelay     time.Duration
	errorDelay       time.Duration
	cooldownEvery    int
	cooldownDuration time.Duration

	sleep     func(time.Duration)
	processed int
}

func NewPacer(cfg config.Config) *Pacer {
	return NewPacerWithSleep(cfg, time.Sleep)
}

// NewPacerWithSleep injects the sleep function so pacing logic is testable
// without real delays.
func NewPacerWithSleep(cfg config.Config, sleep func(time.Duration)) *Pacer {
	return &Pacer{
		successDelay:     time.Duration(cfg.SuccessDelayMs) * time.Millisecond,
		errorDelay:       time.Duration(cfg.ErrorDelayMs) * time.Millisecond,
		cooldownEvery:    cfg.CooldownEvery,
		cooldownDuration: time.Duration(cfg.CooldownMs) * time.Millisecond,
		sleep:            sleep,
	}
}

// AfterAttemptFailure pauses the retry loop after a failed request,
// including the last attempt of a stage.
func (p *Pacer) AfterAttemptFailure() {
	p.sleep(p.errorDelay)
}

// AfterItem runs between items: the success or error delay for the item just
// finished, plus the extended cooldown after every cooldownEvery-th item.
func (p *Pacer) AfterItem(ok bool) {
	if ok {
		p.sleep(p.successDelay)
	} else {
		p.sleep(p.errorDelay)
	}

	p.processed++
	if p.cooldownEvery > 0 && p.processed%p.cooldownEvery == 0 {
		p.sleep(p.cooldownDuration)
	}
}
