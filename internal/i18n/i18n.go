package i18n

import "structura/internal/domain"

// Labels is the full display string table for one language. Rendering is
// the frontend's job; the service only resolves the table for a locale.
type Labels struct {
	Title          string `json:"title"`
	SystemReady    string `json:"systemReady"`
	StatusOnline   string `json:"statusOnline"`
	NightMode      string `json:"nightMode"`
	DayMode        string `json:"dayMode"`
	SwitchLang     string `json:"switchLang"`
	AlignLeft      string `json:"alignLeft"`
	AlignRight     string `json:"alignRight"`
	NewInput       string `json:"newInput"`
	Placeholder    string `json:"placeholder"`
	Chars          string `json:"chars"`
	Processing     string `json:"processing"`
	Listening      string `json:"listening"`
	MicError       string `json:"micError"`
	Execute        string `json:"execute"`
	LogTitle       string `json:"logTitle"`
	NoTasks        string `json:"noTasks"`
	Completed      string `json:"completed"`
	MarkIncomplete string `json:"markIncomplete"`
	MarkComplete   string `json:"markComplete"`
	Delete         string `json:"delete"`

	NotifyTitle  string `json:"notifyTitle"`
	NotifyOn     string `json:"notifyOn"`
	NotifyOff    string `json:"notifyOff"`
	NotifyDenied string `json:"notifyDenied"`

	Categories map[domain.Category]string `json:"categories"`
	Priorities map[domain.Priority]string `json:"priorities"`

	Error string `json:"error"`
}

var tables = map[domain.Language]Labels{
	domain.LanguageEN: {
		Title:          "STRUCTURA_TODO_V1.2",
		SystemReady:    "SYSTEM_READY",
		StatusOnline:   "STATUS: ONLINE",
		NightMode:      "NIGHT_MODE",
		DayMode:        "DAY_MODE",
		SwitchLang:     "CN",
		AlignLeft:      "ALIGN: L",
		AlignRight:     "ALIGN: R",
		NewInput:       "New_Instruction_Input",
		Placeholder:    "Ex: Call Lucy at 5 PM, Urgent fix #bug...",
		Chars:          "CHARS",
		Processing:     "PROCESSING...",
		Listening:      "LISTENING...",
		MicError:       "MIC_ERROR",
		Execute:        "EXECUTE",
		LogTitle:       "Directive_Log",
		NoTasks:        "NO_ACTIVE_DIRECTIVES",
		Completed:      "COMPLETED",
		MarkIncomplete: "Mark Incomplete",
		MarkComplete:   "Mark Complete",
		Delete:         "Delete",
		NotifyTitle:    "SYSTEM_ALERTS",
		NotifyOn:       "[ONLINE] ALERTS_ACTIVE",
		NotifyOff:      "[OFFLINE] CLICK_TO_ENABLE",
		NotifyDenied:   "[ERROR] ACCESS_DENIED",
		Categories: map[domain.Category]string{
			domain.CategoryWork:     "WORK",
			domain.CategoryPersonal: "PERSONAL",
			domain.CategoryUrgent:   "URGENT",
			domain.CategoryMisc:     "MISC",
		},
		Priorities: map[domain.Priority]string{
			domain.PriorityHigh:   "HIGH",
			domain.PriorityMedium: "MED",
			domain.PriorityLow:    "LOW",
		},
		Error: "Error processing input. Ensure API Key is set.",
	},
	domain.LanguageZH: {
		Title:          "结构化_待办_V1.2",
		SystemReady:    "系统_就绪",
		StatusOnline:   "状态：在线",
		NightMode:      "夜间模式",
		DayMode:        "日间模式",
		SwitchLang:     "EN",
		AlignLeft:      "布局：左",
		AlignRight:     "布局：右",
		NewInput:       "新指令输入",
		Placeholder:    "例如：下午5点给Lucy打电话，紧急修复bug...",
		Chars:          "字符",
		Processing:     "处理中...",
		Listening:      "正在聆听...",
		MicError:       "麦克风错误",
		Execute:        "执行",
		LogTitle:       "指令日志",
		NoTasks:        "无活动指令",
		Completed:      "已完成",
		MarkIncomplete: "标记为未完成",
		MarkComplete:   "标记为完成",
		Delete:         "删除",
		NotifyTitle:    "系统警报",
		NotifyOn:       "[在线] 警报已激活",
		NotifyOff:      "[离线] 点击开启警报",
		NotifyDenied:   "[错误] 权限被拒绝",
		Categories: map[domain.Category]string{
			domain.CategoryWork:     "工作",
			domain.CategoryPersonal: "个人",
			domain.CategoryUrgent:   "紧急",
			domain.CategoryMisc:     "杂项",
		},
		Priorities: map[domain.Priority]string{
			domain.PriorityHigh:   "高",
			domain.PriorityMedium: "中",
			domain.PriorityLow:    "低",
		},
		Error: "处理输入时出错。请确保已设置 API 密钥。",
	},
}

// Get resolves the label table for a language, falling back to English
// for anything unknown.
func Get(lang domain.Language) Labels {
	if labels, ok := tables[lang]; ok {
		return labels
	}
	return tables[domain.LanguageEN]
}

// CategoryLabel resolves the display name for a category, routing unknown
// values through the misc-equivalent default.
func CategoryLabel(lang domain.Language, c domain.Category) string {
	labels := Get(lang)
	if name, ok := labels.Categories[c]; ok {
		return name
	}
	return labels.Categories[domain.CategoryMisc]
}
