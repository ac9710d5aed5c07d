package bot

// DefaultStrings is the built-in English string table. A langs.json file
// can override or localize it; missing keys fall back here.
func DefaultStrings() map[string]string {
	return map[string]string{
		"confirm":   "Confirm",
		"cancel":    "Cancel",
		"none":      "none",
		"no_events": "No events.",
		"more_days": "…and {count} more day(s)",

		"failure_title":       "Something went wrong",
		"generic_failure":     "The operation failed. Please try again later.",
		"missing_permissions": "You need the Manage Events permission to do that.",
		"stale_prompt":        "This prompt is no longer valid.",
		"cancelled_title":     "Cancelled",

		"failure_invalidid": "That is not a valid event id.",
		"failure_notfound":  "No matching event was found.",
		"failure_toomany":   "Too many events matched; narrow the query or use ##id.",

		"add_success_title":        "Event added",
		"add_success_message":      "Added **{title}** (id `#{event_id}`).",
		"add_failure_title":        "Could not add the event",
		"add_failure_invaliddate":  "Invalid date; use DD.MM.YYYY.",
		"add_failure_pastdate":     "The date is in the past.",
		"add_failure_fardate":      "The date is more than a year away.",
		"add_failure_invalidtime":  "Invalid time; use HH:MM.",
		"add_failure_toolongtitle": "The title is longer than 100 characters.",

		"edit_choose_title":   "Which event do you want to edit?",
		"remove_choose_title": "Which event do you want to remove?",
		"choose_description":  "Pick one of the matching events below.",

		"edit_confirm_title":   "Confirm the edit",
		"edit_confirm_intro":   "Changes to **{title}**:",
		"edit_failure_title":   "Could not edit the event",
		"edit_success_title":   "Event edited",
		"edit_success_message": "**{title}** was updated.",

		"remove_confirm_title":       "Confirm the removal",
		"remove_confirm_description": "This event will be removed:",
		"remove_failure_title":       "Could not remove the event",
		"remove_success_title":       "Event removed",
		"remove_success_message":     "The event was removed.",

		"applies_to": "Applies to {role}",

		"field_title":    "Title",
		"field_type":     "Type",
		"field_message":  "Message",
		"field_role":     "Role",
		"field_date":     "Date",
		"field_time":     "Time",
		"field_location": "Location",

		"type_test":     "Test",
		"type_exam":     "Exam",
		"type_deadline": "Deadline",
		"type_retake":   "Retake",
		"type_other":    "Other",

		"weekday_monday":    "Monday",
		"weekday_tuesday":   "Tuesday",
		"weekday_wednesday": "Wednesday",
		"weekday_thursday":  "Thursday",
		"weekday_friday":    "Friday",
		"weekday_saturday":  "Saturday",
		"weekday_sunday":    "Sunday",

		"show_day_title":          "Events on {date}",
		"show_day_failure_title":  "Could not show that day",
		"show_byid_title":         "Event #{event_id}",
		"show_byid_failure_title": "Could not show that event",

		"show_week_title":              "Week of {date}",
		"show_week_failure_title":      "Could not show that week",
		"week_failure_invaliddate":     "Invalid date; use DD.MM.YYYY.",
		"week_failure_invalidweek":     "There is no such week this year.",
		"week_failure_bothdateandweek": "Give either a date or a week number, not both.",

		"show_all_title":          "Upcoming events",
		"show_all_with_old_title": "All events",

		"config_title":              "Calendar configuration",
		"config_events_channel":     "Events channel",
		"config_logging_channel":    "Logging channel",
		"config_success_title":      "Configuration updated",
		"config_channel_set":        "{label} is now {channel}.",
		"config_failure_title":      "Configuration not changed",
		"config_channel_unwritable": "I cannot send messages in {channel}.",
	}
}
