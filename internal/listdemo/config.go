package listdemo

const (
	EngineArray  = "array"
	EngineLinked = "linked"
	EngineBoth   = "both"
)

type Config struct {
	Engine    string  `mapstructure:"engine"`
	Capacity  int     `mapstructure:"capacity"`   // ArrayList 容量
	NodeLimit int     `mapstructure:"node_limit"` // LinkedList 节点上限，0 为不限制
	Union     []int32 `mapstructure:"union"`      // 内置示例中求并集使用的 B 表
	Script    []Step  `mapstructure:"script"`     // 自定义脚本，非空时替代内置示例
}

// 脚本中的一次调用
type Step struct {
	Op     string  `mapstructure:"op"` // insert | delete | get | locate | clear | print | union
	Pos    int     `mapstructure:"pos"`
	Value  int32   `mapstructure:"value"`
	Values []int32 `mapstructure:"values"` // union 的 B 表
	Label  string  `mapstructure:"label"`  // print 的标题，{elem} 替换为最近一次 get/delete 的结果
}

// 按配置需要运行的引擎
func (c *Config) Engines() []string {
	switch c.Engine {
	case EngineArray:
		return []string{EngineArray}
	case EngineLinked:
		return []string{EngineLinked}
	default:
		return []string{EngineArray, EngineLinked}
	}
}
