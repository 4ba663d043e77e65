package prompt

// 비율에 따른 추가 프롬프트 - 지원하는 비율은 세 가지뿐
const (
	ratioSquare = "IMPORTANT: Generate a SQUARE image with 1:1 aspect ratio. The image must be exactly square shaped, with equal width and height. Do not create vertical or horizontal rectangles."

	ratioLandscape = "IMPORTANT: Generate a WIDE HORIZONTAL image with 16:9 aspect ratio. The image must be wider than it is tall, like a movie screen or landscape photo."

	ratioPortrait = "IMPORTANT: Generate a TALL VERTICAL image with 9:16 aspect ratio. The image must be taller than it is wide, like a smartphone screen or portrait photo."
)

// AspectRatioInstruction - 비율 문자열을 고정 지시문으로 매핑
// 모르는 비율은 1:1 지시문으로 fallback
func AspectRatioInstruction(ratio string) string {
	switch ratio {
	case "16:9":
		return ratioLandscape
	case "9:16":
		return ratioPortrait
	case "1:1":
		return ratioSquare
	default:
		return ratioSquare
	}
}
