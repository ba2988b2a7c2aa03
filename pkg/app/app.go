// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载玩法配置与建筑布局、
// 打开本地存储、组装管理器并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/game"
	"github.com/decker502/pillars/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 指定启动场景 ID（如 "clicker"），为空则使用设置中的启动场景
	Scene string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	lastUpdate time.Time // 上一次 Update 的墙钟时刻，用于计算 deltaTime

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载玩法参数与建筑布局
	clickerCfg, err := config.LoadClickerConfig("data/clicker.yaml")
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	layout, err := config.LoadBuildingLayout("data/building.yaml")
	if err != nil {
		return nil, fmt.Errorf("建筑布局加载失败: %w", err)
	}
	if err := layout.Validate(clickerCfg); err != nil {
		return nil, fmt.Errorf("建筑布局验证失败: %w", err)
	}
	log.Printf("[App] 建筑布局: %d 个构件, %d 根柱子", len(layout.Pieces), clickerCfg.PillarCount)

	// 打开跨平台本地存储；失败时降级为仅内存模式，不阻止启动
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "pillars",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings and records will not persist)", err)
		gdataManager = nil
	}

	gameState := game.GetGameState()
	gameState.Verbose = cfg.Verbose

	gameState.SettingsManager, err = game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings manager init: %v", err)
	}
	gameState.RecordManager, err = game.NewRecordManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: record manager init: %v", err)
	}

	// 按设置应用全屏
	settings := gameState.SettingsManager.GetSettings()
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器与场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		switch sceneID {
		case game.SceneMenu:
			return scenes.NewMenuScene(sceneManager)
		case game.SceneShapes:
			return scenes.NewShapesScene(sceneManager)
		case game.SceneLine:
			return scenes.NewLineScene(sceneManager)
		case game.SceneClicker:
			return scenes.NewClickerScene(sceneManager, clickerCfg, layout)
		}
		log.Printf("[App] 未知场景 ID: %s", sceneID)
		return nil
	})

	// 确定启动场景：命令行参数优先于设置
	startScene := cfg.Scene
	if startScene == "" {
		startScene = settings.StartScene
	}
	if !game.ValidSceneID(startScene) {
		log.Printf("[App] 无效的启动场景 %q, 回落到主菜单", startScene)
		startScene = game.SceneMenu
	}
	log.Printf("[App] 启动场景: %s", startScene)
	sceneManager.LoadScene(startScene)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		lastUpdate:   time.Now(),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		if sm := game.GetGameState().SettingsManager; sm != nil {
			sm.SetFullscreen(!isFullscreen)
			if err := sm.Save(); err != nil {
				log.Printf("[App] Warning: failed to save settings: %v", err)
			}
		}
	}

	// 墙钟 deltaTime：玩法按真实时间推进，与 TPS 无关
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
