package main

import (
	"flag"
	"log"

	"github.com/decker502/pillars/pkg/app"
	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/embedded"
	"github.com/decker502/pillars/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "启用详细日志输出")
	sceneFlag = flag.String("scene", "", "启动场景 (menu, shapes, line, clicker)，为空则使用设置")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何数据加载之前
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Scene:   *sceneFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Pillars - Save the Building")

	// 开始游戏主循环，窗口关闭后返回
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	// 窗口正常关闭：给当前场景一次保存状态的机会
	if scene := a.GetSceneManager().GetCurrentScene(); scene != nil {
		if saveable, ok := scene.(game.Saveable); ok {
			if !saveable.SaveOnExit() {
				log.Printf("[Main] 退出保存失败")
			}
		}
	}
}
