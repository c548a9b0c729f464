package render

const stylesheet = `:root { color-scheme: light; --ink: #1f2933; --muted: #52606d; --accent: #2f6fed; --ok: #1b873f; --bad: #c92a2a; --line: #d9e2ec; }
* { box-sizing: border-box; }
body { margin: 0; font: 16px/1.6 system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--ink); background: #f5f7fa; }
.courseware { max-width: 960px; margin: 0 auto; padding: 24px 16px 96px; }
.cw-header h1 { margin: 0 0 4px; font-size: 2rem; }
.cw-meta { margin: 0; color: var(--muted); }
.cw-objectives { margin: 12px 0; padding-left: 20px; color: var(--muted); }
.cw-score { display: inline-block; margin: 8px 0 16px; padding: 4px 12px; border-radius: 999px; background: #e6efff; color: var(--accent); font-weight: 600; }
.slide { background: #fff; border: 1px solid var(--line); border-radius: 12px; padding: 24px; box-shadow: 0 1px 3px rgba(0,0,0,.06); }
.slide[hidden] { display: none; }
.slide-title { margin-top: 0; }
.slide-figure { margin: 0 0 16px; }
.slide-figure img { display: block; width: 100%; height: auto; border-radius: 8px; background: #eef2f7; }
.quiz { margin-top: 16px; }
.quiz fieldset { border: 1px solid var(--line); border-radius: 8px; padding: 12px 16px; }
.quiz legend { font-weight: 600; padding: 0 4px; }
.option { display: block; padding: 6px 8px; border-radius: 6px; cursor: pointer; }
.option:hover { background: #f0f4f8; }
.option.is-correct { background: #e3f6e8; color: var(--ok); }
.option.is-incorrect { background: #fdecec; color: var(--bad); }
.quiz-actions { margin-top: 12px; }
.quiz button, .cw-nav button { font: inherit; padding: 6px 16px; border-radius: 6px; border: 1px solid var(--accent); background: var(--accent); color: #fff; cursor: pointer; }
.quiz button[type="reset"] { background: #fff; color: var(--accent); }
.quiz-feedback { min-height: 1.5em; margin: 8px 0 0; font-weight: 600; }
.quiz.is-solved .quiz-feedback { color: var(--ok); }
.quiz-explanation { margin: 4px 0 0; color: var(--muted); }
.cw-nav { position: fixed; left: 0; right: 0; bottom: 0; display: flex; gap: 16px; align-items: center; justify-content: center; padding: 12px; background: rgba(255,255,255,.95); border-top: 1px solid var(--line); }
.cw-nav button:disabled { opacity: .4; cursor: default; }
`
