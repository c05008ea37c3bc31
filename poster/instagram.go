// Package poster publishes a finished reel to Instagram by driving a real
// browser. Instagram has no public upload API for this, so the flow clicks
// through the web UI and is deliberately conservative: any missing element
// fails the post rather than guessing.
package poster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"reelforge/config"
	"reelforge/logging"
)

type Instagram struct {
	cfg *config.Config
	log *logging.Logger
}

func NewInstagram(cfg *config.Config, log *logging.Logger) *Instagram {
	return &Instagram{cfg: cfg, log: log}
}

// Post uploads videoPath as a Reel with the given caption. Credentials come
// from INSTAGRAM_USERNAME / INSTAGRAM_PASSWORD.
func (p *Instagram) Post(ctx context.Context, videoPath, caption string) error {
	username := os.Getenv("INSTAGRAM_USERNAME")
	password := os.Getenv("INSTAGRAM_PASSWORD")
	if username == "" || password == "" {
		return fmt.Errorf("instagram credentials missing: set INSTAGRAM_USERNAME and INSTAGRAM_PASSWORD")
	}
	abs, err := filepath.Abs(videoPath)
	if err != nil {
		return fmt.Errorf("resolve video path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("video to post: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.cfg.Instagram.Headless),
		chromedp.WindowSize(1280, 900),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := time.Duration(p.cfg.Instagram.UploadTimeoutS) * time.Second
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	pause := time.Duration(p.cfg.Instagram.SlowMoMS) * time.Millisecond

	p.log.Info("Posting reel to Instagram: %s", abs)
	if err := p.login(runCtx, username, password, pause); err != nil {
		return fmt.Errorf("instagram login: %w", err)
	}
	if err := p.upload(runCtx, abs, caption, pause); err != nil {
		return fmt.Errorf("instagram upload: %w", err)
	}
	p.log.Info("Reel posted to Instagram")
	return nil
}

func (p *Instagram) login(ctx context.Context, username, password string, pause time.Duration) error {
	if err := chromedp.Run(ctx,
		chromedp.Navigate("https://www.instagram.com/accounts/login/"),
		chromedp.WaitVisible(`input[name="username"]`, chromedp.ByQuery),
	); err != nil {
		return err
	}
	p.acceptCookies(ctx, pause)

	err := chromedp.Run(ctx,
		chromedp.Sleep(pause),
		chromedp.SendKeys(`input[name="username"]`, username, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="password"]`, password, chromedp.ByQuery),
		chromedp.Sleep(pause),
		chromedp.Click(`button[type="submit"]`, chromedp.ByQuery),
		// The home feed's navigation bar is the login success marker.
		chromedp.WaitVisible(`svg[aria-label="Yeni gönderi"], svg[aria-label="New post"]`, chromedp.ByQuery),
	)
	if err != nil {
		return err
	}
	// "Save login info" and notification prompts appear intermittently.
	p.dismissDialog(ctx, pause)
	return nil
}

// acceptCookies clicks the cookie consent banner when present. Best-effort:
// accounts in regions without the banner just time out quietly.
func (p *Instagram) acceptCookies(ctx context.Context, pause time.Duration) {
	bannerCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_ = chromedp.Run(bannerCtx,
		chromedp.Click(`//button[contains(text(),"Allow all cookies") or contains(text(),"Tüm çerezlere izin ver")]`, chromedp.BySearch),
		chromedp.Sleep(pause),
	)
}

// dismissDialog clicks through the optional post-login prompts. Failure is
// fine: the prompts do not always appear.
func (p *Instagram) dismissDialog(ctx context.Context, pause time.Duration) {
	dialogCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for _, sel := range []string{`//button[text()="Not Now"]`, `//button[text()="Şimdi Değil"]`} {
		if err := chromedp.Run(dialogCtx,
			chromedp.Click(sel, chromedp.BySearch),
			chromedp.Sleep(pause),
		); err != nil {
			return
		}
	}
}

func (p *Instagram) upload(ctx context.Context, videoPath, caption string, pause time.Duration) error {
	return chromedp.Run(ctx,
		chromedp.Click(`svg[aria-label="Yeni gönderi"], svg[aria-label="New post"]`, chromedp.ByQuery),
		chromedp.Sleep(pause),
		chromedp.WaitVisible(`input[type="file"]`, chromedp.ByQuery),
		chromedp.SetUploadFiles(`input[type="file"]`, []string{videoPath}, chromedp.ByQuery),
		// Vertical video prompts a crop step, then a preview step.
		chromedp.WaitVisible(`//div[@role="dialog"]//div[text()="İleri" or text()="Next"]`, chromedp.BySearch),
		chromedp.Sleep(pause),
		chromedp.Click(`//div[@role="dialog"]//div[text()="İleri" or text()="Next"]`, chromedp.BySearch),
		chromedp.Sleep(pause),
		chromedp.Click(`//div[@role="dialog"]//div[text()="İleri" or text()="Next"]`, chromedp.BySearch),
		chromedp.Sleep(pause),
		chromedp.WaitVisible(`div[role="dialog"] div[aria-label][contenteditable="true"]`, chromedp.ByQuery),
		chromedp.SendKeys(`div[role="dialog"] div[aria-label][contenteditable="true"]`, caption, chromedp.ByQuery),
		chromedp.Sleep(pause),
		chromedp.Click(`//div[@role="dialog"]//div[text()="Paylaş" or text()="Share"]`, chromedp.BySearch),
		// Instagram shows a confirmation card once the reel is published.
		chromedp.WaitVisible(`//*[contains(text(),"paylaşıldı") or contains(text(),"has been shared")]`, chromedp.BySearch),
	)
}
