// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputCapturer is implemented by pages that own the keyboard while a form
// or a search field is focused. Global single-letter keys are disabled then.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page and the shared wallet state
// 2) handles global keys (quit, connect, disconnect, refresh, version)
// 3) receives session updates and turns them into notifications
// 4) handles NavigateTo messages
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	wallet service.WalletService
	state  *walletState

	pages   map[string]tea.Model
	current string

	spin      spinner.Model
	notice    string
	noticeErr bool
	noticeID  int

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(
	ctx context.Context,
	wallet service.WalletService,
	state *walletState,
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
) RootModel {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = accentStyle

	return RootModel{
		ctx:       ctx,
		wallet:    wallet,
		state:     state,
		pages:     pages,
		current:   startPage,
		spin:      sp,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSessionUpdate(r.ctx, r.wallet), r.spin.Tick}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if !r.pageCapturesInput() {
			if next, cmd, handled := r.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()

	case sessionUpdateMsg:
		r.applySessionUpdate(models.SessionUpdate(msg))
		cmds := []tea.Cmd{waitForSessionUpdate(r.ctx, r.wallet)}
		if text, isErr := sessionNotice(models.SessionUpdate(msg)); text != "" {
			cmds = append(cmds, notify(text, isErr))
		}
		cmds = append(cmds, r.forward(msg))
		return r, tea.Batch(cmds...)

	case connectDoneMsg:
		r.state.connecting = false
		// Failed attempts are reported through the session update; only
		// errors raised outside the attempt need a notice here.
		if msg.err != nil && errors.Is(msg.err, service.ErrManagerStopped) {
			return r, notify(app.MsgConnectFailed, true)
		}
		return r, nil

	case disconnectDoneMsg:
		if msg.err != nil {
			return r, notify(humanizeError(msg.err, app.MsgConnectFailed), true)
		}
		return r, nil

	case refreshDoneMsg:
		r.state.refreshing = false
		if msg.err != nil {
			return r, notify(app.MsgBalancesRefreshFailed, true)
		}
		return r, notify(app.MsgBalancesRefreshed, false)

	case noticeMsg:
		r.noticeID++
		r.notice = msg.text
		r.noticeErr = msg.isErr
		return r, clearNoticeAfter(r.noticeID, noticeTTL)

	case clearNoticeMsg:
		if msg.id == r.noticeID {
			r.notice = ""
			r.noticeErr = false
		}
		return r, nil

	case copiedMsg:
		if msg.err != nil {
			return r, notify(app.MsgCopyFailed, true)
		}
		text := app.MsgCopied
		if msg.label != "" {
			text = msg.label + ": " + strings.ToLower(app.MsgCopied)
		}
		return r, notify(text, false)

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spin, cmd = r.spin.Update(msg)
		return r, cmd
	}

	return r, r.forward(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	b.WriteString(r.renderHeader())
	b.WriteString("\n")
	if r.notice != "" {
		if r.noticeErr {
			b.WriteString(errorStyle.Render("✗ " + r.notice))
		} else {
			b.WriteString(successStyle.Render("✓ " + r.notice))
		}
	}
	b.WriteString("\n\n")

	if page := r.page(); page != nil {
		b.WriteString(page.View())
	} else {
		b.WriteString(renderPage(strings.ToUpper(appName), "", ""))
	}

	return appStyle.Render(b.String())
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.version):
		if r.current == pageHome {
			r.showBuildInfo = true
			return r, nil, true
		}
	case key.Matches(msg, keys.connect):
		if r.state.connected() || r.state.connecting {
			return r, nil, true
		}
		r.state.connecting = true
		return r, tea.Batch(cmdConnect(r.ctx, r.wallet), r.spin.Tick), true
	case key.Matches(msg, keys.disconnect):
		if !r.state.connected() && !r.state.connecting {
			return r, nil, true
		}
		return r, cmdDisconnect(r.ctx, r.wallet), true
	case key.Matches(msg, keys.refresh):
		if !r.state.connected() || r.state.refreshing {
			return r, nil, true
		}
		r.state.refreshing = true
		return r, tea.Batch(cmdRefresh(r.ctx, r.wallet), r.spin.Tick), true
	}
	return r, nil, false
}

func (r RootModel) applySessionUpdate(update models.SessionUpdate) {
	r.state.session = update.Session
	switch update.Reason {
	case models.ReasonConnected, models.ReasonConnectFailed, models.ReasonDisconnected:
		r.state.connecting = false
	}
}

// sessionNotice returns the notification shown for a session update.
// Refresh failures stay silent here, the manual refresh reports them itself.
func sessionNotice(update models.SessionUpdate) (string, bool) {
	switch update.Reason {
	case models.ReasonConnected:
		return app.MsgWalletConnected, false
	case models.ReasonDisconnected:
		return app.MsgWalletDisconnected, false
	case models.ReasonReloaded:
		return app.MsgNetworkChanged, false
	case models.ReasonConnectFailed:
		return humanizeError(update.Err, app.MsgConnectFailed), true
	}
	return "", false
}

func (r RootModel) renderHeader() string {
	title := titleStyle.Render(appName)

	var status string
	switch {
	case r.state.connecting:
		status = r.spin.View() + " Connecting..."
	case r.state.connected():
		status = successStyle.Render("●") + " " + r.state.network.Name + "  " + utils.ShortAddress(r.state.session.Address)
		if r.state.refreshing {
			status += "  " + r.spin.View()
		}
	default:
		status = helpStyle.Render("○ Not connected")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", status)
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) pageCapturesInput() bool {
	c, ok := r.page().(inputCapturer)
	return ok && c.capturesInput()
}

// forward delegates msg to the active page. Pages are pointer models, so
// the stored value never changes.
func (r RootModel) forward(msg tea.Msg) tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return cmd
}
