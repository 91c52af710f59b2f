// Package main provides localization for the storeshot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Prepare app screenshots for store listing slots.": "アプリのスクリーンショットをストア掲載枠向けに整形します。",

		// Export command
		"Export a single screenshot for a store listing slot.": "1枚のスクリーンショットをストア掲載枠向けにエクスポート",

		// Batch command
		"Export every image in a directory.": "ディレクトリ内の全画像をエクスポート",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"storeshot version %s":      "storeshot バージョン %s",

		// Runtime messages
		"Exporting %s (%s preset)...":     "%s をエクスポート中 (%s プリセット)...",
		"Exporting %d images from %s...":  "%d 枚の画像を %s からエクスポート中...",
		"Output saved to %s":              "出力を %s に保存しました",
		"Exported %s to %s":               "%s を %s にエクスポートしました",
		"Failed to export %s: %s":         "%s のエクスポートに失敗しました: %s",
		"All %d images exported":          "%d 枚の画像をエクスポートしました",
		"%d of %d images failed":          "%d / %d 枚の画像が失敗しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Summary saved to %s":             "サマリーを %s に保存しました",
		"Failed to write summary: %s":     "サマリーの書き込みに失敗しました: %s",
	})
}
