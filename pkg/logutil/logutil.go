package logutil

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// LogLevel 日志级别，同时实现了 pflag.Value，
// 可以直接挂到 cobra 的 --log-level 选项上
type LogLevel int

// 定义日志级别
const (
	DEBUG LogLevel = iota // 0
	INFO                  // 1
	WARN                  // 2
	ERROR                 // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]LogLevel{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

func (l *LogLevel) String() string {
	for name, level := range LOG_LEVELS {
		if level == *l {
			return name
		}
	}
	return fmt.Sprintf("LogLevel(%d)", int(*l))
}

// Set 解析命令行传入的级别名，大小写不敏感
func (l *LogLevel) Set(value string) error {
	level, ok := LOG_LEVELS[strings.ToUpper(value)]
	if !ok {
		names := make([]string, 0, len(LOG_LEVELS))
		for name := range LOG_LEVELS {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("非法的日志级别 %q, 可选: %s",
			value, strings.Join(names, "/"))
	}
	*l = level
	return nil
}

func (l *LogLevel) Type() string {
	return "level"
}

var (
	logger       *log.Logger
	logFile      *os.File
	once         sync.Once
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，允许指定输出目标（stdout 或 文件）
func InitLogger(output string, level LogLevel) {
	once.Do(func() {
		var err error
		if output == "stdout" {
			logFile = os.Stdout
		} else {
			logFile, err = os.OpenFile(
				// 以追加模式打开日志文件，不会覆盖已有内容
				output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatal("无法创建日志文件:", err)
			}
		}
		logger = log.New(logFile, "", log.LstdFlags)
		currentLevel = level // 设置日志级别
	})
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level LogLevel, msg string, args ...any) {
	if logger == nil {
		InitLogger("stdout", INFO) // 默认输出到控制台
	}
	if level >= currentLevel { // 值越小打印得越多
		_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
		formattedMsg := fmt.Sprintf(msg, args...)
		logger.Printf("[%s:%d] %s", filepath.Base(file), line, formattedMsg)
	}
}

// 设置日志级别
func SetLogLevel(level LogLevel) {
	currentLevel = level
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带完整的调用堆栈
func Error(msg string, args ...any) {
	size := 1024 // 初始缓冲区大小
	for {
		// 在堆上分配内存
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)

		if n < size { // 如果数据小于缓冲区，则不需要扩展
			// :TODO: 如果string(buf[:n])里面本身有格式化字符，比如%s，
			// 那么是否会有问题呢？
			logMessage(
				ERROR, "[ERR] "+msg+"\n调用堆栈:\n"+string(buf[:n]), args...)
			return
		}

		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话
// :TODO: 是否需要显式调用?
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout {
		err := logFile.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
