// Package planner pairs subtitle files with video files by episode number and
// computes the new subtitle names.
//
// A subtitle paired with a video is renamed to the video's base name plus the
// subtitle's own extension, so "01.srt" next to "Ep01.mkv" becomes "Ep01.srt".
// Operations are ordered by episode number.
package planner
