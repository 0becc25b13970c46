package logger

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for pipeline log messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestrator
		"Starting banner export":                "バナーのエクスポートを開始",
		"Failed to load source image: %s":       "背景画像の読み込みに失敗しました: %s",
		"Failed to decode source image: %s":     "背景画像のデコードに失敗しました: %s",
		"Failed to resolve target geometry: %s": "出力ジオメトリの解決に失敗しました: %s",
		"Export target resolved: %dx%d":         "出力サイズを解決しました: %dx%d",
		"Failed to map styles: %s":              "スタイルの変換に失敗しました: %s",
		"Failed to composite background: %s":    "背景の合成に失敗しました: %s",
		"Failed to render card: %s":             "カードの描画に失敗しました: %s",
		"Failed to render text: %s":             "テキストの描画に失敗しました: %s",
		"Failed to encode banner: %s":           "バナーのエンコードに失敗しました: %s",
		"Failed to save banner: %s":             "バナーの保存に失敗しました: %s",
		"Banner exported: %s (%d bytes)":        "バナーを書き出しました: %s (%d バイト)",
	})
}
