package logger

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for pipeline log messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Resolving geometry":                 "描画領域を計算しています",
		"Painting background":                "背景を描画しています",
		"Compositing device frame":           "デバイスフレームを合成しています",
		"Encoding image":                     "画像をエンコードしています",
		"Export completed":                   "エクスポートが完了しました",
		"Failed to decode source image: %s":  "元画像のデコードに失敗しました: %s",
		"Failed to resolve geometry: %s":     "描画領域の計算に失敗しました: %s",
		"Failed to compose surface: %s":      "サーフェスの合成に失敗しました: %s",
		"Failed to composite frame: %s":      "フレームの合成に失敗しました: %s",
		"Failed to encode image: %s":         "画像のエンコードに失敗しました: %s",
		"Exported %dx%d %s image: %d bytes":  "%dx%d の %s 画像をエクスポートしました: %d バイト",
	})
}
