// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// waitForSessionUpdate blocks on the session manager's updates channel and
// turns the next snapshot into a message. RootModel re-arms it after every
// delivered update.
func waitForSessionUpdate(ctx context.Context, wallet service.WalletService) tea.Cmd {
	return func() tea.Msg {
		select {
		case update, ok := <-wallet.Updates():
			if !ok {
				return nil
			}
			return sessionUpdateMsg(update)
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdConnect(ctx context.Context, wallet service.WalletService) tea.Cmd {
	return func() tea.Msg {
		_, err := wallet.Connect(ctx)
		return connectDoneMsg{err: err}
	}
}

func cmdDisconnect(ctx context.Context, wallet service.WalletService) tea.Cmd {
	return func() tea.Msg {
		return disconnectDoneMsg{err: wallet.Disconnect(ctx)}
	}
}

func cmdRefresh(ctx context.Context, wallet service.WalletService) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: wallet.RefreshBalances(ctx)}
	}
}

func copyToClipboard(label, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: writeClipboard(value)}
	}
}

func notify(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{text: text, isErr: isErr}
	}
}

func clearNoticeAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}
