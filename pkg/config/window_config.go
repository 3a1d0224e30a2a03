package config

// 窗口与页面布局常量
// 页面坐标以内容顶部为原点，Y 轴向下；视口通过滚动偏移映射到屏幕坐标
const (
	// WindowWidth 是启动时的窗口宽度（像素）
	WindowWidth = 1280
	// WindowHeight 是启动时的窗口高度（像素）
	WindowHeight = 720

	// WindowTitle 是窗口标题
	WindowTitle = "Crucial Software - Digital Services"

	// NavBarHeight 是顶部导航栏高度
	NavBarHeight = 64.0

	// SectionPaddingY 是每个页面分区上下留白
	SectionPaddingY = 96.0

	// PageMarginX 是页面内容左右边距
	PageMarginX = 64.0

	// CardGap 是卡片之间的间距
	CardGap = 24.0

	// ScrollStep 是方向键/滚轮单次滚动距离
	ScrollStep = 60.0

	// StorageAppName 是 gdata 存储使用的应用名
	StorageAppName = "crucial_showcase"
)
