package api_router

import (
	"os"
	"runtime"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/app"
	pkgapp "github.com/haierkeys/fast-file-share-service/pkg/app"
	"github.com/haierkeys/fast-file-share-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"
}

// Check 健康检查接口，检查服务状态与数据库连接
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	// 检查数据库连接
	if err := h.App.DB.Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}

// SystemInfo system information response structure
// SystemInfo 系统信息响应结构
type SystemInfo struct {
	StartTime     time.Time   `json:"startTime"`     // Start time // 启动时间
	Uptime        float64     `json:"uptime"`        // Uptime (seconds) // 运行时间（秒）
	RuntimeStatus RuntimeInfo `json:"runtimeStatus"` // Go runtime status // Go 运行时状态
	CPU           CPUInfo     `json:"cpu"`           // CPU information // CPU 信息
	Memory        MemoryInfo  `json:"memory"`        // Memory information // 内存信息
	Host          HostInfo    `json:"host"`          // Host information // 主机信息
	Process       ProcessInfo `json:"process"`       // Process information // 进程信息
}

// RuntimeInfo Go runtime information
// RuntimeInfo Go 运行时信息
type RuntimeInfo struct {
	GoVersion    string `json:"goVersion"`    // Go version // Go 版本
	NumGoroutine int    `json:"numGoroutine"` // Goroutine count // 协程数
	HeapAlloc    uint64 `json:"heapAlloc"`    // Heap allocated bytes // 堆内存分配
	NumGC        uint32 `json:"numGC"`        // GC count // GC 次数
}

// CPUInfo CPU information
// CPUInfo CPU 信息
type CPUInfo struct {
	ModelName     string    `json:"modelName"`     // Model name // 型号
	PhysicalCores int       `json:"physicalCores"` // Physical cores // 物理核心数
	LogicalCores  int       `json:"logicalCores"`  // Logical cores // 逻辑核心数
	Percent       []float64 `json:"percent"`       // Usage percentage per core // 每个核心的使用率
	LoadAvg       *LoadInfo `json:"loadAvg"`       // Load average // 平均负载
}

// LoadInfo system load information
type LoadInfo struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// MemoryInfo memory information
type MemoryInfo struct {
	Total       uint64  `json:"total"`       // Total physical memory // 系统总内存
	Available   uint64  `json:"available"`   // Available memory // 可用内存
	Used        uint64  `json:"used"`        // Used memory // 已用内存
	UsedPercent float64 `json:"usedPercent"` // Memory usage percentage // 内存使用率
}

// HostInfo host identification information
type HostInfo struct {
	Hostname      string `json:"hostname"`      // Hostname // 主机名
	OS            string `json:"os"`            // Operating system // 操作系统
	Platform      string `json:"platform"`      // Platform name // 平台
	Arch          string `json:"arch"`          // Architecture // 架构
	KernelVersion string `json:"kernelVersion"` // Kernel version // 内核版本
	Uptime        uint64 `json:"uptime"`        // System uptime // 系统运行时间
}

// ProcessInfo current process information
type ProcessInfo struct {
	PID           int32   `json:"pid"`           // Process ID
	Name          string  `json:"name"`          // Process Name
	CPUPercent    float64 `json:"cpuPercent"`    // CPU Usage percentage
	MemoryPercent float32 `json:"memoryPercent"` // Memory Usage percentage
}

// System 获取系统与运行时信息
func (h *HealthHandler) System(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	// Go Runtime
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	info := SystemInfo{
		StartTime: h.App.StartTime,
		Uptime:    time.Since(h.App.StartTime).Seconds(),
		RuntimeStatus: RuntimeInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			HeapAlloc:    m.HeapAlloc,
			NumGC:        m.NumGC,
		},
	}

	// CPU
	cpuInfoList, _ := cpu.Info()
	if len(cpuInfoList) > 0 {
		info.CPU.ModelName = cpuInfoList[0].ModelName
	}
	info.CPU.PhysicalCores, _ = cpu.Counts(false)
	info.CPU.LogicalCores, _ = cpu.Counts(true)
	info.CPU.Percent, _ = cpu.Percent(0, true)
	if loadStat, err := load.Avg(); err == nil {
		info.CPU.LoadAvg = &LoadInfo{
			Load1:  loadStat.Load1,
			Load5:  loadStat.Load5,
			Load15: loadStat.Load15,
		}
	}

	// Memory
	if vMem, err := mem.VirtualMemory(); err == nil {
		info.Memory = MemoryInfo{
			Total:       vMem.Total,
			Available:   vMem.Available,
			Used:        vMem.Used,
			UsedPercent: vMem.UsedPercent,
		}
	}

	// Host
	if hInfo, err := host.Info(); err == nil {
		info.Host = HostInfo{
			Hostname:      hInfo.Hostname,
			OS:            hInfo.OS,
			Platform:      hInfo.Platform,
			Arch:          hInfo.KernelArch,
			KernelVersion: hInfo.KernelVersion,
			Uptime:        hInfo.Uptime,
		}
	}

	// Process
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		info.Process.PID = p.Pid
		info.Process.Name, _ = p.Name()
		info.Process.CPUPercent, _ = p.CPUPercent()
		info.Process.MemoryPercent, _ = p.MemoryPercent()
	}

	response.ToResponse(code.Success.WithData(info))
}
