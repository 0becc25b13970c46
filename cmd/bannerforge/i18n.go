// Package main provides localization for the bannerforge CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Export glass-card banners as raster images": "ガラスカードバナーをラスター画像として書き出し",

		// Export command
		"Render a banner and save it as a PNG file": "バナーを描画してPNGファイルとして保存",
		"either --scene or --url is required":       "--scene か --url のいずれかが必要です",
		"Resolving banner elements from %s":         "%s からバナー要素を解決しています",
		"Saved %s (%dx%d, scale %.2f)":              "%s を保存しました（%dx%d、スケール %.2f）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"bannerforge version %s":   "bannerforge バージョン %s",

		// Flags
		"YAML scene file describing the banner":                 "バナーを記述するYAMLシーンファイル",
		"Page URL to resolve banner elements from":              "バナー要素を解決するページURL",
		"CSS selector of the on-screen preview container":       "画面上のプレビューコンテナのCSSセレクタ",
		"CSS selector of the background image element":          "背景画像要素のCSSセレクタ",
		"CSS selector of the glass card element":                "ガラスカード要素のCSSセレクタ",
		"CSS selector of the card label element":                "カードラベル要素のCSSセレクタ",
		"Fixed output width in pixels (0 = derive from image)":  "出力幅の固定値（ピクセル、0 = 画像から導出）",
		"Fixed output height in pixels (0 = derive from image)": "出力高さの固定値（ピクセル、0 = 画像から導出）",
		"Output directory for the exported banner":              "書き出したバナーの出力ディレクトリ",
		"TrueType font file for text rendering":                 "テキスト描画用のTrueTypeフォントファイル",
		"Save intermediate images for inspection":               "中間画像を検査用に保存",
		"Directory for debug output":                            "デバッグ出力のディレクトリ",
		"Path to Chrome executable (system default when empty)": "Chrome実行ファイルのパス（空の場合はシステムデフォルト）",
		"Run browser in non-headless mode":                      "ブラウザを非ヘッドレスモードで実行",
		"Overall export timeout":                                "書き出し全体のタイムアウト",
		"Log level (debug, info, warn, error)":                  "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                               "すべてのログ出力を抑制",

		// Signals
		"Interrupted, shutting down...": "中断されました。シャットダウンしています...",
	})
}
